package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/artloom/mediagate/common/config"
	"github.com/artloom/mediagate/model"
	"github.com/artloom/mediagate/relay/channel/aimlapi"
	relaymodel "github.com/artloom/mediagate/relay/model"
	"github.com/artloom/mediagate/relay/util"
)

// GetGenerationResult returns the stored state of a task. Video tasks that
// are still in flight trigger one upstream poll so the stored record keeps
// up with the provider without a background worker.
func GetGenerationResult(c *gin.Context) *relaymodel.ErrorWithStatusCode {
	taskId := c.Query("task_id")
	if taskId == "" {
		return util.ErrorWrapper(errors.New("task_id is required"), "invalid_request", http.StatusBadRequest)
	}

	record, err := model.GetGenerationByTaskId(taskId)
	if err != nil {
		return util.ErrorWrapper(errors.Errorf("task %s not found", taskId), "task_not_found", http.StatusNotFound)
	}
	if tokenName := c.GetString("token_name"); tokenName != "" && record.TokenName != tokenName {
		return util.ErrorWrapper(errors.Errorf("task %s not found", taskId), "task_not_found", http.StatusNotFound)
	}

	if record.Status == aimlapi.TaskStatusProcessing && record.Provider == "aimlapi" && record.Detail != "" {
		adaptor := &aimlapi.Adaptor{GenerationRecord: record}
		meta := &util.RelayMeta{
			BaseURL: config.AIMLAPIBaseURL,
			APIKey:  config.AIMLAPIKey,
		}
		response, relayErr := adaptor.QueryResult(c, record, meta)
		if relayErr != nil {
			return relayErr
		}
		c.JSON(http.StatusOK, response)
		return nil
	}

	c.JSON(http.StatusOK, &relaymodel.GenerationResponse{
		TaskId:  record.TaskId,
		Model:   record.Model,
		Status:  record.Status,
		Results: record.Results(),
		Error:   record.FailReason,
	})
	return nil
}
