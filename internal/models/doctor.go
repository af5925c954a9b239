package models

// Doctor is reference data loaded once; the API never writes it.
type Doctor struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100;not null" json:"specialization"`
	ImagePath      string `gorm:"size:255;not null" json:"image_path"`
}
