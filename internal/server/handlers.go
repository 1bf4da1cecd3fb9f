package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-roaster/internal/generation"
	"github.com/jonathan/resume-roaster/internal/roast"
	"github.com/jonathan/resume-roaster/internal/types"
)

// RoastRequest represents the request body for /roast
type RoastRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=10,max=100000"`
	JobDescription string `json:"job_description" validate:"required,min=10,max=50000"`
}

// TailorRequest represents the request body for /tailor and /preview.
// Either an inline profile or the owner_id of a stored master CV must
// be supplied.
type TailorRequest struct {
	OwnerID            string                  `json:"owner_id,omitempty" validate:"omitempty,uuid"`
	Profile            *types.CandidateProfile `json:"profile,omitempty"`
	JobDescription     string                  `json:"job_description" validate:"required,min=10,max=50000"`
	Template           string                  `json:"template,omitempty"`
	IncludeCoverLetter bool                    `json:"include_cover_letter,omitempty"`
}

// MasterCVRequest represents the request body for /master-cv
type MasterCVRequest struct {
	OwnerID    string `json:"owner_id" validate:"required,uuid"`
	ResumeText string `json:"resume_text" validate:"required,min=10,max=100000"`
}

// RoastResponse wraps the roast result.
type RoastResponse struct {
	Success bool               `json:"success"`
	Roast   *types.RoastResult `json:"roast"`
}

// decodeAndValidate decodes the request body and runs struct
// validation. Writes the error response itself and reports whether the
// handler should continue.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			s.errorResponse(w, http.StatusBadRequest, "Invalid field "+first.Field()+": failed on "+first.Tag())
			return false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// handleRoast critiques a pasted resume against a job description
func (s *Server) handleRoast(w http.ResponseWriter, r *http.Request) {
	var req RoastRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.roaster.Roast(r.Context(), roast.Request{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, RoastResponse{Success: true, Roast: result})
}

// handleTailor generates and persists a tailored resume
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	s.handleGeneration(w, r, true)
}

// handlePreview generates a tailored resume without persisting it
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	s.handleGeneration(w, r, false)
}

func (s *Server) handleGeneration(w http.ResponseWriter, r *http.Request, persist bool) {
	var req TailorRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	ownerID := uuid.Nil
	if req.OwnerID != "" {
		ownerID, _ = uuid.Parse(req.OwnerID)
	}

	candidate := req.Profile
	if candidate == nil {
		if ownerID == uuid.Nil {
			s.errorResponse(w, http.StatusBadRequest, "Either profile or owner_id is required")
			return
		}
		cv, err := s.reader.GetMasterCV(r.Context(), ownerID)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		if cv == nil {
			s.errorResponse(w, http.StatusNotFound, "No master CV stored for this owner")
			return
		}
		candidate = cv.Profile
	}

	genReq := generation.Request{
		OwnerID:            ownerID,
		Profile:            candidate,
		JobDescription:     req.JobDescription,
		Template:           types.ParseTemplateTag(req.Template),
		IncludeCoverLetter: req.IncludeCoverLetter,
	}

	var resume *types.GeneratedResume
	var err error
	if persist {
		resume, err = s.tailor.Tailor(r.Context(), genReq)
	} else {
		resume, err = s.tailor.Preview(r.Context(), genReq)
	}
	if err != nil {
		s.serviceError(w, err)
		return
	}

	status := http.StatusOK
	if persist {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, resume)
}

// handleParseMasterCV parses resume text into a profile and stores it
func (s *Server) handleParseMasterCV(w http.ResponseWriter, r *http.Request) {
	var req MasterCVRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid owner_id format")
		return
	}

	parsed, err := s.parser.Parse(r.Context(), ownerID, req.ResumeText)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, parsed)
}

// handleGetMasterCV returns an owner's stored profile
func (s *Server) handleGetMasterCV(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.PathValue("owner_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid owner ID format")
		return
	}

	cv, err := s.reader.GetMasterCV(r.Context(), ownerID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "Master CV not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, cv)
}

// handleGetResume returns a generated artifact by ID
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return
	}

	resume, err := s.reader.GetGeneratedResume(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleListResumes lists an owner's generated artifacts
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.URL.Query().Get("owner_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "owner_id query parameter is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	summaries, err := s.reader.ListGeneratedResumes(r.Context(), ownerID, limit)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": summaries})
}
