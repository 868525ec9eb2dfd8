package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	resumelensErrors "resumelens/internal/errors"
	"resumelens/internal/interview"
	"resumelens/internal/observability"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAuditHandler wraps the audit handler with observability
func (s *Server) createAuditHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.audit")
		defer span.End()

		// Parse request
		var req AuditRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.Text) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "text field is required", http.StatusBadRequest)
			return
		}
		minLen := s.AppConfig.Engine.MinTextLength
		if len(strings.TrimSpace(req.Text)) < minLen {
			err := fmt.Errorf("resume text too short: %d chars", len(req.Text))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too short",
				fmt.Sprintf("text must be at least %d characters", minLen), http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.Text) > int(s.MaxRequestSize) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.Text))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large",
				fmt.Sprintf("text exceeds size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
			return
		}

		if req.Profile.TargetRole == "" {
			req.Profile.TargetRole = s.AppConfig.Engine.DefaultRole
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Text)),
			attribute.String("request.target_role", req.Profile.TargetRole),
			attribute.String("operation", "audit"),
		)

		input := types.AuditInput{
			Text:    req.Text,
			Profile: req.Profile,
		}

		// Track audit with observability
		metrics := om.GetMetrics()
		var result types.AuditResult
		metrics.TrackAudit(ctx, func(ctx context.Context) *observability.AuditOutcome {
			result = s.Auditor.Audit(input)
			outcome := &observability.AuditOutcome{
				IsResume:     result.IsResume,
				OverallScore: result.OverallScore,
			}
			if result.Lenses != nil {
				outcome.LensScores = map[string]int{
					"ats":     result.Lenses.ATS.Score,
					"keyword": result.Lenses.Keyword.Score,
					"impact":  result.Lenses.Impact.Score,
					"metrics": result.Lenses.Metrics.Score,
					"role":    result.Lenses.Role.Score,
				}
			}
			return outcome
		}, om)

		if !result.IsResume {
			s.Logger.LogError(resumelensErrors.NewEngineError(resumelensErrors.ErrCodeNotAResume,
				"document does not look like a resume", nil), "Audit rejected document",
				"target_role", req.Profile.TargetRole)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Bool("response.is_resume", result.IsResume),
			attribute.Int("response.overall_score", result.OverallScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createInterviewHandler wraps the interview handler with observability
func (s *Server) createInterviewHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.interview")
		defer span.End()

		var req InterviewRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.Exchanges) == 0 {
			err := fmt.Errorf("missing exchanges")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing exchanges", "exchanges field must contain at least one question/answer pair", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.role", req.Role),
			attribute.String("request.difficulty", string(req.Difficulty)),
			attribute.Int("request.exchanges", len(req.Exchanges)),
			attribute.String("operation", "interview"),
		)

		input := types.SessionInput{
			Role:       req.Role,
			Difficulty: req.Difficulty,
			Exchanges:  req.Exchanges,
		}

		result := interview.EvaluateSession(input)

		metrics := om.GetMetrics()
		metrics.RecordInterviewSession(ctx, result.Verdict, om,
			attribute.String("difficulty", string(result.Difficulty)),
			attribute.Int("exchanges", len(req.Exchanges)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.overall", result.Overall),
			attribute.String("response.verdict", result.Verdict),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(), om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
