package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hamed0406/uptimevalidator/internal/availability"
	"github.com/hamed0406/uptimevalidator/internal/domain"
	apimw "github.com/hamed0406/uptimevalidator/internal/httpapi/middleware"
	"github.com/hamed0406/uptimevalidator/internal/monitor"
	"github.com/hamed0406/uptimevalidator/internal/validate"
)

type availabilityResponse struct {
	availability.Classification
	Hex   string `json:"hex"`
	Theme string `json:"theme"`
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("percentage"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "percentage is required")
		return
	}
	th := s.Themes.Current()
	c := availability.Classify(validate.ParseUptimeValue(q))
	writeJSON(w, http.StatusOK, availabilityResponse{
		Classification: c,
		Hex:            th.Resolve(c.Color),
		Theme:          th.Name,
	})
}

func (s *Server) handleMonitorTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"types": domain.MonitorTypes})
}

type validateMonitorReq struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

func (s *Server) handleValidateMonitor(w http.ResponseWriter, r *http.Request) {
	var in validateMonitorReq
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	res := s.Validator.ValidateFormData(in.Type, in.Data)
	writeJSON(w, http.StatusOK, monitor.ToBackendResult(res))
}

type validateFieldReq struct {
	Type  string `json:"type"`
	Field string `json:"field"`
	Value any    `json:"value"`
}

func (s *Server) handleValidateField(w http.ResponseWriter, r *http.Request) {
	var in validateFieldReq
	if err := decodeJSON(w, r, &in); err != nil || in.Field == "" {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	t := domain.MonitorType(in.Type)
	if !t.Valid() {
		writeJSON(w, http.StatusOK, domain.Invalid("Unsupported monitor type: "+in.Type))
		return
	}
	writeJSON(w, http.StatusOK, s.Validator.Fields.ValidateField(t, in.Field, in.Value))
}

type createMonitorReq struct {
	Type   string         `json:"type"`
	Fields map[string]any `json:"fields"`
}

type createMonitorResp struct {
	Monitor    *domain.Monitor         `json:"monitor,omitempty"`
	Validation domain.ValidationResult `json:"validation"`
}

func (s *Server) handleCreateMonitor(w http.ResponseWriter, r *http.Request) {
	var in createMonitorReq
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}

	res := s.Validator.ValidateFormData(in.Type, in.Fields)
	if !res.Success {
		writeJSON(w, http.StatusBadRequest, createMonitorResp{Validation: res})
		return
	}

	m := monitor.CreateMonitorObject(domain.MonitorType(in.Type), in.Fields)
	if errs := monitor.ValidationErrors(m); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, createMonitorResp{Validation: res.Merge(domain.Invalid(errs...))})
		return
	}
	m.ID = s.NewID()

	s.Logger.Info("monitor_created",
		zap.String("id", string(m.ID)),
		zap.String("type", string(m.Type)),
		zap.Int("warnings", len(res.Warnings)),
		zap.String("role", string(apimw.RoleFrom(r.Context()))),
	)
	writeJSON(w, http.StatusCreated, createMonitorResp{Monitor: &m, Validation: res})
}

func (s *Server) handleGetTheme(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"theme":     s.Themes.Current(),
		"available": s.Themes.Names(),
	})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(w, r, &in); err != nil || in.Name == "" {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	if err := s.Themes.Set(in.Name); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.Themes.Current())
}
