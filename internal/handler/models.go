package handler

import "github.com/SergeyBogomolovv/shop-admin/internal/entities"

// SyncResponse is the JSON form of a sync result
type SyncResponse struct {
	Status  string         `json:"status" example:"success"`
	Written map[string]int `json:"written"`
	Skipped []string       `json:"skipped"`
}

func SyncResultToJSON(res entities.SyncResult) SyncResponse {
	skipped := res.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return SyncResponse{
		Status:  "success",
		Written: res.Written,
		Skipped: skipped,
	}
}
