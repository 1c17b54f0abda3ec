// Package models contains the GORM persistence models and their conversions
// to and from the domain entities. Models stay inside the persistence layer;
// repositories only ever hand domain types to callers.
package models
