package query

import "content-service/internal/application/common"

type GalleryQueryListResult struct {
	Result []*common.GalleryImageResult `json:"result"`
}
