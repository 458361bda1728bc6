package aimlapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/artloom/mediagate/common"
	"github.com/artloom/mediagate/common/helper"
	"github.com/artloom/mediagate/common/image"
	"github.com/artloom/mediagate/common/logger"
	"github.com/artloom/mediagate/common/storage"
	"github.com/artloom/mediagate/model"
	"github.com/artloom/mediagate/relay/capability"
	"github.com/artloom/mediagate/relay/channel"
	relaymodel "github.com/artloom/mediagate/relay/model"
	"github.com/artloom/mediagate/relay/util"
)

type Adaptor struct {
	GenerationRecord *model.Generation
}

func (a *Adaptor) Init(meta *util.RelayMeta) {
}

func (a *Adaptor) GetModelList() []string {
	return ModelList
}

func (a *Adaptor) GetChannelName() string {
	return "aimlapi"
}

func (a *Adaptor) GetRequestURL(meta *util.RelayMeta) (string, error) {
	descriptor := capability.Lookup(meta.ActualModelName)
	if descriptor.IsVideo {
		return meta.BaseURL + "/v2/generate/video", nil
	}
	return meta.BaseURL + "/v1/images/generations", nil
}

func (a *Adaptor) SetupRequestHeader(c *gin.Context, req *http.Request, meta *util.RelayMeta) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+meta.APIKey)
	return nil
}

// ConvertGenerationRequest builds the upstream payload from the filtered
// parameter bag. Input images are attached under the descriptor's wire
// field, as an array when the model takes several, a single reference
// otherwise.
func (a *Adaptor) ConvertGenerationRequest(c *gin.Context, request *relaymodel.GenerationRequest, descriptor capability.Descriptor, meta *util.RelayMeta) (any, error) {
	return BuildPayload(request, descriptor, meta.ActualModelName)
}

// BuildPayload is the wire-shaping step shared with tests. The filtered
// bag serializes under its wire keys; prompt and model ride alongside.
func BuildPayload(request *relaymodel.GenerationRequest, descriptor capability.Descriptor, actualModelName string) (map[string]any, error) {
	filtered := capability.FilterParams(request.GenerationParams, descriptor)
	data, err := json.Marshal(filtered)
	if err != nil {
		return nil, errors.Wrap(err, "marshal filtered params failed")
	}
	payload := map[string]any{}
	if err = json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "unmarshal filtered params failed")
	}

	payload["model"] = actualModelName
	payload["prompt"] = request.Prompt

	if len(request.Images) > 0 && descriptor.ImageInputParam != "" {
		if descriptor.AcceptsMultiImages {
			payload[descriptor.ImageInputParam] = request.Images
		} else {
			payload[descriptor.ImageInputParam] = request.Images[0]
		}
	}
	return payload, nil
}

// CreatePendingRecord inserts the task row before the upstream call so a
// crash mid-flight still leaves a traceable record.
func (a *Adaptor) CreatePendingRecord(c *gin.Context, meta *util.RelayMeta) error {
	descriptor := capability.Lookup(meta.ActualModelName)
	now := helper.GetTimestamp()

	record := &model.Generation{
		TaskId:    helper.GenTaskID("gen"),
		TokenName: meta.TokenName,
		Model:     meta.OriginModelName,
		Provider:  a.GetChannelName(),
		Status:    TaskStatusPending,
		IsVideo:   descriptor.IsVideo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := record.Insert(); err != nil {
		logger.Errorf(c, "failed to create pending generation record: %v", err)
		return errors.Wrap(err, "create generation record failed")
	}
	a.GenerationRecord = record
	return nil
}

func (a *Adaptor) DoRequest(c *gin.Context, meta *util.RelayMeta, requestBody io.Reader) (*http.Response, error) {
	return channel.DoRequestHelper(a, c, meta, requestBody)
}

func (a *Adaptor) DoResponse(c *gin.Context, resp *http.Response, meta *util.RelayMeta) (*relaymodel.GenerationResponse, *relaymodel.ErrorWithStatusCode) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		relayErr := util.RelayErrorHandler(resp)
		a.markFailed(c, relayErr.Error.Message)
		return nil, relayErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		a.markFailed(c, fmt.Sprintf("read response failed: %v", err))
		return nil, util.ErrorWrapper(err, "read_response_failed", http.StatusInternalServerError)
	}

	descriptor := capability.Lookup(meta.ActualModelName)
	if descriptor.IsVideo {
		return a.handleVideoResponse(c, body)
	}
	return a.handleImageResponse(c, body)
}

func (a *Adaptor) handleImageResponse(c *gin.Context, body []byte) (*relaymodel.GenerationResponse, *relaymodel.ErrorWithStatusCode) {
	var imageResp ImageResponse
	if err := json.Unmarshal(body, &imageResp); err != nil {
		a.markFailed(c, fmt.Sprintf("parse response failed: %v", err))
		return nil, util.ErrorWrapper(err, "parse_response_failed", http.StatusInternalServerError)
	}
	if imageResp.Error != "" {
		a.markFailed(c, imageResp.Error)
		return nil, util.ErrorWrapper(errors.New(imageResp.Error), "upstream_error", http.StatusBadRequest)
	}

	urls := make([]string, 0, len(imageResp.Images))
	for _, img := range imageResp.Images {
		if img.URL != "" {
			urls = append(urls, img.URL)
		} else if img.B64JSON != "" {
			contentType := helper.AssignOrDefault(img.ContentType, "image/png")
			urls = append(urls, "data:"+contentType+";base64,"+img.B64JSON)
		}
	}

	record := a.GenerationRecord
	if record != nil {
		record.Status = TaskStatusSucceeded
		record.SetResults(urls)
		record.TotalDuration = int(helper.GetTimestamp() - record.CreatedAt)
		if err := record.Update(); err != nil {
			logger.Errorf(c, "failed to update generation record: %v", err)
		}
		if storage.Enabled() && len(urls) > 0 {
			taskId := record.TaskId
			ref := urls[0]
			common.RelayCtxGo(context.Background(), func() {
				mirrorResultToStorage(taskId, ref)
			})
		}
	}

	response := &relaymodel.GenerationResponse{
		Model:   c.GetString("original_model"),
		Status:  TaskStatusSucceeded,
		Results: urls,
	}
	if record != nil {
		response.TaskId = record.TaskId
	}
	return response, nil
}

func (a *Adaptor) handleVideoResponse(c *gin.Context, body []byte) (*relaymodel.GenerationResponse, *relaymodel.ErrorWithStatusCode) {
	var videoResp VideoResponse
	if err := json.Unmarshal(body, &videoResp); err != nil {
		a.markFailed(c, fmt.Sprintf("parse response failed: %v", err))
		return nil, util.ErrorWrapper(err, "parse_response_failed", http.StatusInternalServerError)
	}
	if videoResp.Error != "" {
		a.markFailed(c, videoResp.Error)
		return nil, util.ErrorWrapper(errors.New(videoResp.Error), "upstream_error", http.StatusBadRequest)
	}

	record := a.GenerationRecord
	if record != nil {
		record.Status = TaskStatusProcessing
		// keep the upstream generation id for polling
		record.Detail = videoResp.GenerationId
		if err := record.Update(); err != nil {
			logger.Errorf(c, "failed to update generation record: %v", err)
		}
	}

	response := &relaymodel.GenerationResponse{
		Model:  c.GetString("original_model"),
		Status: TaskStatusProcessing,
	}
	if record != nil {
		response.TaskId = record.TaskId
	}
	return response, nil
}

// QueryResult polls the upstream for an async video generation and updates
// the stored record when a final status arrives.
func (a *Adaptor) QueryResult(c *gin.Context, record *model.Generation, meta *util.RelayMeta) (*relaymodel.GenerationResponse, *relaymodel.ErrorWithStatusCode) {
	queryURL := fmt.Sprintf("%s/v2/generate/video?generation_id=%s", meta.BaseURL, record.Detail)

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, util.ErrorWrapper(err, "new_request_failed", http.StatusInternalServerError)
	}
	req.Header.Set("Authorization", "Bearer "+meta.APIKey)

	resp, err := util.HTTPClient.Do(req)
	if err != nil {
		return nil, util.ErrorWrapper(err, "do_request_failed", http.StatusInternalServerError)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.RelayErrorHandler(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, util.ErrorWrapper(err, "read_response_failed", http.StatusInternalServerError)
	}
	var result VideoResultResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, util.ErrorWrapper(err, "parse_response_failed", http.StatusInternalServerError)
	}

	switch result.Status {
	case TaskStatusSucceeded:
		record.Status = TaskStatusSucceeded
		if result.Video != nil {
			record.SetResults([]string{result.Video.URL})
		}
		record.TotalDuration = int(time.Now().Unix() - record.CreatedAt)
	case TaskStatusFailed:
		record.Status = TaskStatusFailed
		record.FailReason = result.Error
	default:
		record.Status = TaskStatusProcessing
	}
	if err := record.Update(); err != nil {
		logger.Errorf(c, "failed to update generation record: %v", err)
	}

	return &relaymodel.GenerationResponse{
		TaskId:  record.TaskId,
		Model:   record.Model,
		Status:  record.Status,
		Results: record.Results(),
		Error:   record.FailReason,
	}, nil
}

// mirrorResultToStorage copies one result into the configured bucket so it
// outlives the upstream's retention window. Runs off the request path; the
// record is re-fetched to avoid clobbering a concurrent update.
func mirrorResultToStorage(taskId string, ref string) {
	mimeType, data, err := image.GetImageFromUrl(ref)
	if err != nil || data == "" {
		logger.SysError(fmt.Sprintf("failed to fetch result %s for storage mirror: %v", taskId, err))
		return
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	url, err := storage.UploadResult(context.Background(), data, mimeType)
	if err != nil {
		logger.SysError(fmt.Sprintf("failed to mirror result %s to storage: %v", taskId, err))
		return
	}
	record, err := model.GetGenerationByTaskId(taskId)
	if err != nil {
		return
	}
	record.StoreUrl = url
	if err := record.Update(); err != nil {
		logger.SysError(fmt.Sprintf("failed to save store url for %s: %v", taskId, err))
	}
}

func (a *Adaptor) markFailed(c *gin.Context, reason string) {
	record := a.GenerationRecord
	if record == nil {
		return
	}
	record.Status = TaskStatusFailed
	record.FailReason = reason
	record.TotalDuration = int(helper.GetTimestamp() - record.CreatedAt)
	if err := record.Update(); err != nil {
		logger.Errorf(c, "failed to update failed generation record: %v", err)
	}
}
