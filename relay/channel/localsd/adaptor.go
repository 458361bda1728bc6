package localsd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

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

// Adaptor relays to a local Automatic1111-compatible generation server.
// The server speaks raw base64 and synchronous responses only, so every
// task finishes within the request.
type Adaptor struct {
	GenerationRecord *model.Generation
	img2img          bool
}

func (a *Adaptor) Init(meta *util.RelayMeta) {
}

func (a *Adaptor) GetModelList() []string {
	return ModelList
}

func (a *Adaptor) GetChannelName() string {
	return "localsd"
}

func (a *Adaptor) GetRequestURL(meta *util.RelayMeta) (string, error) {
	if a.img2img {
		return meta.BaseURL + "/sdapi/v1/img2img", nil
	}
	return meta.BaseURL + "/sdapi/v1/txt2img", nil
}

func (a *Adaptor) SetupRequestHeader(c *gin.Context, req *http.Request, meta *util.RelayMeta) error {
	req.Header.Set("Content-Type", "application/json")
	return nil
}

func (a *Adaptor) ConvertGenerationRequest(c *gin.Context, request *relaymodel.GenerationRequest, descriptor capability.Descriptor, meta *util.RelayMeta) (any, error) {
	payload, img2img, err := BuildPayload(request, descriptor, meta.ActualModelName)
	if err != nil {
		return nil, err
	}
	a.img2img = img2img
	return payload, nil
}

// BuildPayload maps the filtered parameter bag onto the local server's
// txt2img/img2img body. Image references are fetched and inlined because
// the server only takes raw base64.
func BuildPayload(request *relaymodel.GenerationRequest, descriptor capability.Descriptor, checkpoint string) (any, bool, error) {
	filtered := capability.FilterParams(request.GenerationParams, descriptor)

	body := Txt2ImgRequest{
		Prompt: request.Prompt,
		OverrideSettings: map[string]any{
			"sd_model_checkpoint": checkpoint,
		},
	}
	if filtered.NegativePrompt != nil {
		body.NegativePrompt = *filtered.NegativePrompt
	}
	if filtered.Steps != nil {
		body.Steps = *filtered.Steps
	}
	if filtered.GuidanceScale != nil {
		body.CfgScale = *filtered.GuidanceScale
	}
	if filtered.Seed != nil {
		body.Seed = *filtered.Seed
	}
	if filtered.NumImages != nil {
		body.BatchSize = *filtered.NumImages
	}
	if filtered.Width != nil {
		body.Width = *filtered.Width
	}
	if filtered.Height != nil {
		body.Height = *filtered.Height
	}

	if len(request.Images) == 0 {
		return body, false, nil
	}

	initImages := make([]string, 0, len(request.Images))
	for _, ref := range request.Images {
		_, data, err := image.GetImageFromUrl(ref)
		if err != nil {
			return nil, false, errors.Wrapf(err, "fetch input image %q failed", ref)
		}
		if data == "" {
			return nil, false, errors.Errorf("input image %q is not a usable image", ref)
		}
		initImages = append(initImages, data)
	}
	img2imgBody := Img2ImgRequest{
		Txt2ImgRequest: body,
		InitImages:     initImages,
	}
	if filtered.Strength != nil {
		img2imgBody.DenoisingStrength = *filtered.Strength
	}
	return img2imgBody, true, nil
}

// CreatePendingRecord inserts the task row before the local call, mirroring
// the remote channel so result lookups behave the same either way.
func (a *Adaptor) CreatePendingRecord(c *gin.Context, meta *util.RelayMeta) error {
	now := helper.GetTimestamp()
	record := &model.Generation{
		TaskId:    helper.GenTaskID("gen"),
		TokenName: meta.TokenName,
		Model:     meta.OriginModelName,
		Provider:  a.GetChannelName(),
		Status:    TaskStatusPending,
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

	if resp.StatusCode != http.StatusOK {
		relayErr := util.RelayErrorHandler(resp)
		a.markFailed(c, relayErr.Error.Message)
		return nil, relayErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		a.markFailed(c, fmt.Sprintf("read response failed: %v", err))
		return nil, util.ErrorWrapper(err, "read_response_failed", http.StatusInternalServerError)
	}
	var result GenerationResult
	if err := json.Unmarshal(body, &result); err != nil {
		a.markFailed(c, fmt.Sprintf("parse response failed: %v", err))
		return nil, util.ErrorWrapper(err, "parse_response_failed", http.StatusInternalServerError)
	}
	if len(result.Images) == 0 {
		reason := helper.AssignOrDefault(result.Detail, "local server returned no images")
		a.markFailed(c, reason)
		return nil, util.ErrorWrapper(errors.New(reason), "upstream_error", http.StatusBadRequest)
	}

	urls := make([]string, 0, len(result.Images))
	for _, b64 := range result.Images {
		if storage.Enabled() {
			url, uploadErr := storage.UploadResult(c.Request.Context(), b64, "image/png")
			if uploadErr == nil {
				urls = append(urls, url)
				continue
			}
			logger.Errorf(c, "failed to store local result, falling back to inline data: %v", uploadErr)
		}
		urls = append(urls, "data:image/png;base64,"+b64)
	}

	record := a.GenerationRecord
	if record != nil {
		record.Status = TaskStatusSucceeded
		record.SetResults(urls)
		record.TotalDuration = int(helper.GetTimestamp() - record.CreatedAt)
		if err := record.Update(); err != nil {
			logger.Errorf(c, "failed to update generation record: %v", err)
		}
	}

	response := &relaymodel.GenerationResponse{
		Model:   meta.OriginModelName,
		Status:  TaskStatusSucceeded,
		Results: urls,
	}
	if record != nil {
		response.TaskId = record.TaskId
	}
	return response, nil
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
