package types

import (
	"maps"
	"time"

	"github.com/zero-day-ai/foundation/fingerprint"
)

// ResourceMetadata records ownership, versioning and timing information for a
// tracked resource. Timestamps are Unix epoch milliseconds.
//
// Invariants: UpdatedAt >= CreatedAt and Version >= 1. Use Validate or
// ResourceMetadataSchema to check them.
type ResourceMetadata struct {
	// CreatedAt is when the resource was first created.
	CreatedAt int64 `json:"created_at" validate:"required,gt=0"`

	// UpdatedAt is when the resource was last modified.
	UpdatedAt int64 `json:"updated_at" validate:"required,gt=0"`

	// Version increases by one on every modification, starting at 1.
	Version int64 `json:"version" validate:"gte=1"`

	CreatedBy string `json:"created_by,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`

	// Tags are free-form key-value annotations.
	Tags map[string]string `json:"tags,omitempty"`

	// Labels are key-value pairs intended for selection and filtering.
	Labels map[string]string `json:"labels,omitempty"`

	// Lifecycle is the resource's current state, if tracked.
	Lifecycle Lifecycle `json:"lifecycle,omitempty" validate:"omitempty,lifecycle"`

	// Fingerprint is a content digest of the resource (see package fingerprint).
	Fingerprint string `json:"fingerprint,omitempty"`

	// ExpiresAt is when the resource expires. Nil means never.
	ExpiresAt *int64 `json:"expires_at,omitempty" validate:"omitempty,gt=0"`
}

// NewResourceMetadata returns version 1 metadata created and last updated at now.
func NewResourceMetadata(now time.Time, createdBy string) ResourceMetadata {
	ms := now.UnixMilli()
	return ResourceMetadata{
		CreatedAt: ms,
		UpdatedAt: ms,
		Version:   1,
		CreatedBy: createdBy,
		UpdatedBy: createdBy,
	}
}

// Touch returns a copy recording a modification at now by updatedBy.
// The version is incremented and UpdatedAt never moves backwards.
func (m ResourceMetadata) Touch(now time.Time, updatedBy string) ResourceMetadata {
	out := m.clone()
	if ms := now.UnixMilli(); ms > out.UpdatedAt {
		out.UpdatedAt = ms
	}
	out.Version++
	if updatedBy != "" {
		out.UpdatedBy = updatedBy
	}
	return out
}

// WithLifecycle returns a copy in state l.
func (m ResourceMetadata) WithLifecycle(l Lifecycle) ResourceMetadata {
	out := m.clone()
	out.Lifecycle = l
	return out
}

// WithExpiry returns a copy expiring at t.
func (m ResourceMetadata) WithExpiry(t time.Time) ResourceMetadata {
	out := m.clone()
	ms := t.UnixMilli()
	out.ExpiresAt = &ms
	return out
}

// WithTag returns a copy with tag key set to value.
func (m ResourceMetadata) WithTag(key, value string) ResourceMetadata {
	out := m.clone()
	if out.Tags == nil {
		out.Tags = make(map[string]string)
	}
	out.Tags[key] = value
	return out
}

// WithLabel returns a copy with label key set to value.
func (m ResourceMetadata) WithLabel(key, value string) ResourceMetadata {
	out := m.clone()
	if out.Labels == nil {
		out.Labels = make(map[string]string)
	}
	out.Labels[key] = value
	return out
}

// WithFingerprint returns a copy whose Fingerprint is the digest of content.
func (m ResourceMetadata) WithFingerprint(content any) (ResourceMetadata, error) {
	fp, err := fingerprint.Generate(content)
	if err != nil {
		return m, err
	}
	out := m.clone()
	out.Fingerprint = fp
	return out, nil
}

// IsExpired reports whether the resource has an expiry at or before now.
func (m ResourceMetadata) IsExpired(now time.Time) bool {
	return m.ExpiresAt != nil && *m.ExpiresAt <= now.UnixMilli()
}

// Created returns CreatedAt as a time.Time.
func (m ResourceMetadata) Created() time.Time {
	return time.UnixMilli(m.CreatedAt)
}

// Updated returns UpdatedAt as a time.Time.
func (m ResourceMetadata) Updated() time.Time {
	return time.UnixMilli(m.UpdatedAt)
}

// Validate checks the metadata against ResourceMetadataSchema.
func (m ResourceMetadata) Validate() error {
	return ResourceMetadataSchema.Validate(m).Err()
}

func (m ResourceMetadata) clone() ResourceMetadata {
	out := m
	out.Tags = maps.Clone(m.Tags)
	out.Labels = maps.Clone(m.Labels)
	if m.ExpiresAt != nil {
		exp := *m.ExpiresAt
		out.ExpiresAt = &exp
	}
	return out
}
