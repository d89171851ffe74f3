package query

import "content-service/internal/application/common"

type SliderQueryListResult struct {
	Result []*common.SliderImageResult `json:"result"`
}
