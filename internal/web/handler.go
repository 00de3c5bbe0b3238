package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/er336250/fish-test/internal/platform/errors"
	errori18n "github.com/er336250/fish-test/internal/platform/errors/i18n"
	"github.com/er336250/fish-test/internal/platform/i18n"
	"github.com/er336250/fish-test/internal/translation"
)

const (
	// DefaultMaxUploadBytes caps a single request body.
	DefaultMaxUploadBytes int64 = 32 << 20

	// OutputFilename names the translated attachment.
	OutputFilename = "translated_output.json"

	multipartMemory = 8 << 20
)

// Form field names accepted by the upload endpoints.
const (
	fieldRecords   = "records"
	fieldTable     = "table"
	fieldNameField = "name_field"
	fieldTypeField = "type_field"
	fieldPreview   = "preview"
)

// HandlerConfig defines the translation defaults applied to every request.
type HandlerConfig struct {
	MaxUploadBytes int64
	Fields         translation.Fields
	PreviewSize    int
}

type handler struct {
	maxUploadBytes int64
	fields         translation.Fields
	previewSize    int
}

type analyzeResponse struct {
	Report translation.Report `json:"report"`
	Output json.RawMessage    `json:"output"`
}

type errorResponse struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

// NewHandler builds the HTTP handler for the translation endpoints.
func NewHandler(config HandlerConfig) http.Handler {
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if config.PreviewSize < 0 {
		config.PreviewSize = translation.DefaultPreviewSize
	}
	h := &handler{
		maxUploadBytes: config.MaxUploadBytes,
		fields:         translation.NewEngine(config.Fields).Fields(),
		previewSize:    config.PreviewSize,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	mux.HandleFunc("POST /api/analyze", h.handleAnalyze)
	mux.HandleFunc("POST /api/translate", h.handleTranslate)
	return mux
}

func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	result, err := h.process(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Report: result.Report, Output: result.Output})
}

func (h *handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	result, err := h.process(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", OutputFilename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Output)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Output)
}

// process reads the uploaded form and runs the translation pipeline.
func (h *handler) process(w http.ResponseWriter, r *http.Request) (translation.Result, error) {
	if err := h.parseForm(w, r); err != nil {
		return translation.Result{}, err
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	records, err := readPart(r, fieldRecords)
	if err != nil {
		return translation.Result{}, err
	}
	table, err := readPart(r, fieldTable)
	if err != nil {
		return translation.Result{}, err
	}

	fields := h.fields
	if value := strings.TrimSpace(r.FormValue(fieldNameField)); value != "" {
		fields.Name = value
	}
	if value := strings.TrimSpace(r.FormValue(fieldTypeField)); value != "" {
		fields.Type = value
	}
	previewSize := h.previewSize
	if value := strings.TrimSpace(r.FormValue(fieldPreview)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
			previewSize = parsed
		}
	}

	return translation.Process(r.Context(), translation.NewEngine(fields), translation.Input{
		Records:     records,
		Table:       table,
		PreviewSize: previewSize,
	})
}

func (h *handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	if r.ContentLength > h.maxUploadBytes {
		return h.tooLarge(nil)
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil {
		return nil
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return h.tooLarge(err)
	}
	return apperrors.WrapWithMetadata(apperrors.CodeInputMissing, "parse multipart form",
		map[string]string{"Field": fieldRecords}, err)
}

func (h *handler) tooLarge(cause error) error {
	metadata := map[string]string{"Limit": strconv.FormatInt(h.maxUploadBytes, 10)}
	message := fmt.Sprintf("upload exceeds %d bytes", h.maxUploadBytes)
	if cause == nil {
		return apperrors.WithMetadata(apperrors.CodeInputTooLarge, message, metadata)
	}
	return apperrors.WrapWithMetadata(apperrors.CodeInputTooLarge, message, metadata, cause)
}

func readPart(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeInputMissing, "missing upload "+field,
			map[string]string{"Field": field}, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", field, err)
	}
	return data, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		log.Printf("web request %s %s: %v", r.Method, r.URL.Path, err)
	}
	locale := i18n.ResolveTag(r).String()
	writeJSON(w, code.HTTPStatus(), errorResponse{
		Code:    code,
		Message: errori18n.Localize(locale, err),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(payload); err != nil {
		log.Printf("encode web response: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(translation.UnescapeLineSeparators(buf.Bytes()))
}
