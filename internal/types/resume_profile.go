// Package types provides type definitions for structured data used throughout the jobika system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ResumeProfile represents the structured fields extracted from one resume document.
// Optional fields are empty strings when not found; Skills is always a subset of
// the resume skill vocabulary. A profile is immutable once produced.
type ResumeProfile struct {
	RawText         string   `json:"raw_text"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Name            string   `json:"name,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
}

// HasSkill reports whether the profile contains the given skill, case-insensitively.
func (p *ResumeProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}
