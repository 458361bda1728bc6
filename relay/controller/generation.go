package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/artloom/mediagate/common"
	"github.com/artloom/mediagate/common/logger"
	"github.com/artloom/mediagate/relay/capability"
	relayconstant "github.com/artloom/mediagate/relay/constant"
	relaymodel "github.com/artloom/mediagate/relay/model"
	"github.com/artloom/mediagate/relay/util"
)

// RelayGeneration handles image and video generation requests end to end:
// bind, capability lookup, precondition checks, wire conversion, upstream
// call, response normalization.
func RelayGeneration(c *gin.Context) *relaymodel.ErrorWithStatusCode {
	request := &relaymodel.GenerationRequest{}
	if err := common.UnmarshalBodyReusable(c, request); err != nil {
		return util.ErrorWrapper(err, "invalid_request", http.StatusBadRequest)
	}

	meta := util.GetRelayMeta(c)
	descriptor := capability.Lookup(request.Model)

	if meta.Mode == relayconstant.RelayModeImageEdits && len(request.Images) == 0 {
		return util.ErrorWrapper(errors.New("image edits require at least one input image"), "invalid_request", http.StatusBadRequest)
	}
	if err := capability.ValidateRequest(request, descriptor); err != nil {
		return util.ErrorWrapper(err, "invalid_request", http.StatusBadRequest)
	}

	adaptor := GetAdaptor(meta.APIType)
	if adaptor == nil {
		return util.ErrorWrapper(fmt.Errorf("invalid api type: %d", meta.APIType), "invalid_api_type", http.StatusBadRequest)
	}
	adaptor.Init(meta)

	if recorder, ok := adaptor.(pendingRecorder); ok {
		if err := recorder.CreatePendingRecord(c, meta); err != nil {
			return util.ErrorWrapper(err, "database_error", http.StatusInternalServerError)
		}
	}

	convertedRequest, err := adaptor.ConvertGenerationRequest(c, request, descriptor, meta)
	if err != nil {
		return util.ErrorWrapper(err, "convert_request_failed", http.StatusInternalServerError)
	}
	jsonData, err := json.Marshal(convertedRequest)
	if err != nil {
		return util.ErrorWrapper(err, "marshal_request_failed", http.StatusInternalServerError)
	}
	logger.Debugf(c, "converted request for %s: %s", meta.ActualModelName, string(jsonData))

	resp, err := adaptor.DoRequest(c, meta, bytes.NewBuffer(jsonData))
	if err != nil {
		return util.ErrorWrapper(err, "do_request_failed", http.StatusInternalServerError)
	}

	response, respErr := adaptor.DoResponse(c, resp, meta)
	if respErr != nil {
		return respErr
	}

	c.JSON(http.StatusOK, response)
	return nil
}
