package model

import (
	"encoding/json"

	"github.com/artloom/mediagate/common/helper"
)

// Generation is the persisted record of one generation task, written when
// the request is accepted and updated as the upstream reports progress.
type Generation struct {
	Id            int    `json:"id"`
	TaskId        string `json:"task_id" gorm:"type:varchar(64);uniqueIndex"`
	TokenName     string `json:"token_name" gorm:"index"`
	Model         string `json:"model" gorm:"index"`
	Provider      string `json:"provider"`
	Status        string `json:"status" gorm:"index"`
	FailReason    string `json:"fail_reason"`
	ResultURLs    string `json:"result_urls" gorm:"type:text"`
	StoreUrl      string `json:"store_url"`
	Detail        string `json:"detail" gorm:"type:text"`
	IsVideo       bool   `json:"is_video"`
	CreatedAt     int64  `json:"created_at" gorm:"bigint;index"`
	UpdatedAt     int64  `json:"updated_at" gorm:"bigint"`
	TotalDuration int    `json:"total_duration"` // seconds from accept to final status
}

func (g *Generation) Insert() error {
	return DB.Create(g).Error
}

func (g *Generation) Update() error {
	g.UpdatedAt = helper.GetTimestamp()
	return DB.Save(g).Error
}

// SetResults stores result URLs as a JSON array.
func (g *Generation) SetResults(urls []string) {
	if len(urls) == 0 {
		g.ResultURLs = ""
		return
	}
	data, err := json.Marshal(urls)
	if err != nil {
		return
	}
	g.ResultURLs = string(data)
}

func (g *Generation) Results() []string {
	if g.ResultURLs == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(g.ResultURLs), &urls); err != nil {
		return nil
	}
	return urls
}

func GetGenerationByTaskId(taskId string) (*Generation, error) {
	var generation Generation
	err := DB.Where("task_id = ?", taskId).First(&generation).Error
	return &generation, err
}

func GetGenerationsByTokenName(tokenName string, startIdx int, num int) ([]*Generation, error) {
	var generations []*Generation
	err := DB.Where("token_name = ?", tokenName).
		Order("id desc").Limit(num).Offset(startIdx).Find(&generations).Error
	return generations, err
}
