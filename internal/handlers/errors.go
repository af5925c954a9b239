package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appsalute/clinic-booking/internal/httperr"
	"github.com/appsalute/clinic-booking/internal/validators"
)

type businessResponse struct {
	status  int
	message string
}

var businessResponses = map[string]businessResponse{
	httperr.CodeInvalidRequest:     {http.StatusBadRequest, "Richiesta non valida."},
	httperr.CodeMissingFields:      {http.StatusBadRequest, "Dati mancanti: assicurati di aver fornito data, fascia oraria e ID del medico."},
	httperr.CodeInvalidDate:        {http.StatusBadRequest, "Data non valida: usa il formato AAAA-MM-GG."},
	httperr.CodeInvalidSlot:        {http.StatusBadRequest, "Fascia oraria non valida."},
	httperr.CodeSlotInPast:         {http.StatusBadRequest, "Non è possibile prenotare una fascia oraria già passata."},
	httperr.CodeSlotTaken:          {http.StatusBadRequest, "Fascia oraria già prenotata."},
	httperr.CodeDoctorNotFound:     {http.StatusNotFound, "Il medico specificato non esiste."},
	httperr.CodeBookingNotFound:    {http.StatusNotFound, "Prenotazione non trovata."},
	httperr.CodeInvalidCredentials: {http.StatusUnauthorized, "Credenziali errate."},
	httperr.CodeUnauthorized:       {http.StatusUnauthorized, "Accesso richiesto."},
}

// writeError maps business errors to their status; anything else is logged and hidden behind a 500.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if resp, ok := businessResponses[code]; ok {
			httperr.Write(c, resp.status, code, resp.message)
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
	httperr.Internal(c, "internal_error", "Errore interno del server.")
}

// writeBindError turns a binding failure into the matching business error.
func writeBindError(c *gin.Context, err error) {
	tag, ok := validators.FailedTag(err)
	if !ok {
		writeError(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
		return
	}

	switch tag {
	case "required":
		writeError(c, httperr.ErrBusiness(httperr.CodeMissingFields))
	case validators.TagBookingDate:
		writeError(c, httperr.ErrBusiness(httperr.CodeInvalidDate))
	case validators.TagTimeSlot:
		writeError(c, httperr.ErrBusiness(httperr.CodeInvalidSlot))
	default:
		writeError(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
	}
}
