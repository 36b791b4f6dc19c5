package scheduler

import (
	"bytes"
	"context"
	"edunexus-service/internal/app/config"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"
	"edunexus-service/internal/pkg/utils"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const candidateTextPath = "candidates.0.content.parts.0.text"

var (
	geminiSchedulerInstance contracts.SchedulerClient
	onceGeminiScheduler     sync.Once
)

type geminiSchedulerClient struct {
	httpClient *http.Client
	cfg        config.AppScheduler
	Log        *zap.Logger
}

func NewGeminiSchedulerClient(cfg config.AppScheduler, logger *zap.Logger) contracts.SchedulerClient {
	onceGeminiScheduler.Do(func() {
		geminiSchedulerInstance = &geminiSchedulerClient{
			httpClient: &http.Client{
				Timeout: time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
			},
			cfg: cfg,
			Log: logger,
		}
	})
	return geminiSchedulerInstance
}

type generateContentRequest struct {
	Contents         []promptContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type promptPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

func (c *geminiSchedulerClient) GenerateTimetable(ctx context.Context, teachers []models.Teacher, classIDs []string, settings models.TimetableSettings) ([]models.TimetableEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	prompt := buildGenerateTimetablePrompt(teachers, classIDs, settings)
	candidateText, err := c.generateContent(ctx, prompt, timetableResponseSchema)
	if err != nil {
		return nil, err
	}

	var entries []models.TimetableEntry
	if err := json.Unmarshal([]byte(candidateText), &entries); err != nil {
		c.Log.Error("geminiSchedulerClient.GenerateTimetable error decoding candidate text",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSchedulerDecode(err)
	}
	for i := range entries {
		entries[i].Day = utils.CanonicalDay(entries[i].Day)
	}

	c.Log.Info("geminiSchedulerClient.GenerateTimetable received proposal",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelKey, c.cfg.Model),
		zap.Int("entry_count", len(entries)),
	)
	return entries, nil
}

func (c *geminiSchedulerClient) SuggestSubstitutions(ctx context.Context, absent models.Teacher, impacted []models.TimetableEntry, available []models.Teacher) ([]models.SubstitutionSuggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	prompt := buildSuggestSubstitutionsPrompt(absent, impacted, available)
	candidateText, err := c.generateContent(ctx, prompt, substitutionResponseSchema)
	if err != nil {
		return nil, err
	}

	var suggestions []models.SubstitutionSuggestion
	if err := json.Unmarshal([]byte(candidateText), &suggestions); err != nil {
		c.Log.Error("geminiSchedulerClient.SuggestSubstitutions error decoding candidate text",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSchedulerDecode(err)
	}
	for i := range suggestions {
		suggestions[i].Day = utils.CanonicalDay(suggestions[i].Day)
	}

	c.Log.Info("geminiSchedulerClient.SuggestSubstitutions received suggestions",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelKey, c.cfg.Model),
		zap.String(constvars.LoggingTeacherIDKey, absent.ID),
		zap.Int("suggestion_count", len(suggestions)),
	)
	return suggestions, nil
}

// generateContent posts a single prompt to the generateContent endpoint and
// returns the first candidate's text part. Network failures are retried once
// when configured; the caller's context bounds the whole exchange either way.
func (c *geminiSchedulerClient) generateContent(ctx context.Context, prompt, responseSchema string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if strings.TrimSpace(c.cfg.APIKey) == "" {
		c.Log.Warn("geminiSchedulerClient.generateContent called without API key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", exceptions.ErrSchedulerNoCredentials()
	}

	payload := generateContentRequest{
		Contents: []promptContent{
			{Parts: []promptPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			ResponseMIMEType: constvars.MIMEApplicationJSON,
			ResponseSchema:   json.RawMessage(responseSchema),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseUrl, "/"), c.cfg.Model, c.cfg.APIKey)

	response, transient, err := c.doRequest(ctx, url, body)
	if err != nil && transient && c.cfg.RetryOnTransientError && ctx.Err() == nil {
		c.Log.Warn("geminiSchedulerClient.generateContent retrying after transient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		response, _, err = c.doRequest(ctx, url, body)
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", exceptions.ErrServerDeadlineExceeded(err)
		}
		c.Log.Error("geminiSchedulerClient.generateContent request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	candidate := gjson.GetBytes(response, candidateTextPath)
	if !candidate.Exists() || strings.TrimSpace(candidate.String()) == "" {
		c.Log.Error("geminiSchedulerClient.generateContent response has no candidate text",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", exceptions.ErrSchedulerEmptyResponse()
	}
	return candidate.String(), nil
}

// doRequest reports whether a failure is transient so the caller can decide
// to retry; only network-level failures qualify, a non-success status does not.
func (c *geminiSchedulerClient) doRequest(ctx context.Context, url string, body []byte) ([]byte, bool, error) {
	request, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, true, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, exceptions.ErrSchedulerRequest(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, exceptions.ErrSchedulerBadStatus(resp.StatusCode, truncateBody(responseBody))
	}
	return responseBody, false, nil
}

func truncateBody(body []byte) string {
	const maxLen = 512
	if len(body) > maxLen {
		return string(body[:maxLen])
	}
	return string(body)
}
