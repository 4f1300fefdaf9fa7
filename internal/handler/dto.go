package handler

import "newsfeed/internal/model"

const StatusOK = "ok"

type NewsResponse struct {
	Status   string          `json:"status"`
	Count    int             `json:"count"`
	Articles []model.Article `json:"articles"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Articles int    `json:"articles"`
}
