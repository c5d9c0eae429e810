package reconcile

import "strings"

const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"
)

type ResourceData struct {
	ODataType string `json:"@odata.type,omitempty"`
	ID        string `json:"id"`
}

// Notification is one entry of a provider change-notification batch.
type Notification struct {
	SubscriptionID                 string       `json:"subscriptionId"`
	SubscriptionExpirationDateTime string       `json:"subscriptionExpirationDateTime,omitempty"`
	ClientState                    string       `json:"clientState"`
	ChangeType                     string       `json:"changeType"`
	Resource                       string       `json:"resource"`
	ResourceData                   ResourceData `json:"resourceData"`
	TenantID                       string       `json:"tenantId,omitempty"`
}

// Batch is the body the provider posts to the webhook.
type Batch struct {
	Value []Notification `json:"value"`
}

// EventID returns the id of the changed event. Older payloads only carry it
// as the last segment of the resource path ("Users/{id}/Events/{eventId}").
func (n Notification) EventID() string {
	if n.ResourceData.ID != "" {
		return n.ResourceData.ID
	}

	res := strings.TrimRight(n.Resource, "/")
	i := strings.LastIndex(res, "/")
	if i < 0 || i == len(res)-1 {
		return ""
	}

	parent := strings.ToLower(res[:i])
	if !strings.HasSuffix(parent, "/events") {
		return ""
	}

	return res[i+1:]
}
