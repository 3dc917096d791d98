package client

import (
	"context"
	"fmt"
	"net/url"

	"adbooking/internal/domains/adspace/model"
	"adbooking/internal/domains/adspace/model/dto"
	"adbooking/shared/failure"
	"adbooking/transport/rest"
)

// Filters narrows a catalog listing. Empty fields are omitted from the query.
type Filters struct {
	City string
	Type model.Type
}

type Client struct {
	rest *rest.Client
}

func New(rest *rest.Client) *Client {
	return &Client{rest: rest}
}

func (c *Client) List(ctx context.Context, filters Filters) ([]model.AdSpace, error) {
	query := url.Values{}
	if filters.City != "" {
		query.Set("city", filters.City)
	}

	if filters.Type != "" {
		query.Set("type", string(filters.Type))
	}

	resp, err := c.rest.Get(ctx, "/ad-spaces", query)
	if err != nil {
		return nil, fmt.Errorf("fetching ad spaces: %w", err)
	}

	if !resp.OK() {
		return nil, failure.FromStatus(resp.StatusCode, "", fmt.Sprintf("Failed to fetch ad spaces (%d)", resp.StatusCode)) // nolint:wrapcheck
	}

	var records []dto.AdSpaceResponse
	if err := resp.Decode(&records); err != nil {
		return nil, fmt.Errorf("fetching ad spaces: %w", err)
	}

	return dto.ToModels(records), nil
}

func (c *Client) Get(ctx context.Context, id string) (model.AdSpace, error) {
	resp, err := c.rest.Get(ctx, "/ad-spaces/"+url.PathEscape(id), nil)
	if err != nil {
		return model.AdSpace{}, fmt.Errorf("fetching ad space: %w", err)
	}

	if !resp.OK() {
		return model.AdSpace{}, failure.NotFound("Ad space not found") // nolint:wrapcheck
	}

	var record dto.AdSpaceResponse
	if err := resp.Decode(&record); err != nil {
		return model.AdSpace{}, fmt.Errorf("fetching ad space: %w", err)
	}

	return record.ToModel(), nil
}
