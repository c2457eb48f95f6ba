package mqtt

import "fmt"

func TopicUserInbound(prefix string) string {
	return fmt.Sprintf("%s/user/+/inbound", prefix)
}

func TopicInbound(prefix, platformUserID string) string {
	return fmt.Sprintf("%s/user/%s/inbound", prefix, platformUserID)
}

func TopicOutbound(prefix, platformUserID string) string {
	return fmt.Sprintf("%s/user/%s/outbound", prefix, platformUserID)
}
