package query

import "content-service/internal/application/common"

type NotificationQueryListResult struct {
	Result      []*common.NotificationResult `json:"result"`
	UnreadCount int64                        `json:"unread_count"`
}
