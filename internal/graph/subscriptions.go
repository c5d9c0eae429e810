package graph

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const subscriptionChangeTypes = "created,updated,deleted"

func (c *Client) expiration() string {
	return c.now().Add(c.subscriptionTTL).UTC().Format(time.RFC3339Nano)
}

func (p subscriptionPayload) toSubscription() (*Subscription, error) {
	exp, err := ParseDateTime(p.ExpirationDateTime)
	if err != nil {
		return nil, fmt.Errorf("graph: subscription %s: %w", p.ID, err)
	}

	return &Subscription{
		ID:                 p.ID,
		Resource:           p.Resource,
		ExpirationDateTime: exp,
	}, nil
}

// CreateSubscription registers a push subscription for event changes in a mailbox.
func (c *Client) CreateSubscription(ctx context.Context, ns NewSubscription) (*Subscription, error) {
	body := subscriptionPayload{
		ChangeType:         subscriptionChangeTypes,
		NotificationURL:    ns.NotificationURL,
		Resource:           "users/" + ns.Mailbox + "/events",
		ExpirationDateTime: c.expiration(),
		ClientState:        ns.ClientState,
	}

	var out subscriptionPayload
	if err := c.do(ctx, http.MethodPost, "/subscriptions", body, &out, nil); err != nil {
		return nil, err
	}

	return out.toSubscription()
}

// RenewSubscription pushes the subscription's expiry out by the configured TTL.
func (c *Client) RenewSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	body := subscriptionPayload{ExpirationDateTime: c.expiration()}

	var out subscriptionPayload
	if err := c.do(ctx, http.MethodPatch, "/subscriptions/"+url.PathEscape(subscriptionID), body, &out, nil); err != nil {
		return nil, err
	}

	return out.toSubscription()
}

func (c *Client) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	return c.do(ctx, http.MethodDelete, "/subscriptions/"+url.PathEscape(subscriptionID), nil, nil, nil)
}
