package service

import (
	"errors"
	"fmt"
	"strings"

	"daylog/internal/model"
)

// ErrMetaInUse marks a refused meta-item removal; entries still reference
// the item, and entries are never cleaned up on deletion.
var ErrMetaInUse = errors.New("meta item is in use")

// AddMetaItem appends {fresh id, trimmed name} to a lookup list. Names
// must be non-empty and unique within the list case-insensitively.
func AddMetaItem(doc *model.Document, list model.MetaList, name string) (*model.Document, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", fmt.Errorf("name is required")
	}
	items := doc.Meta.MetaItems(list)
	if items == nil {
		return nil, "", fmt.Errorf("unknown meta list %q", list)
	}
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return nil, "", fmt.Errorf("%s already has an item named %q", list, item.Name)
		}
	}
	out := doc.Clone()
	id := model.NewID()
	out.Meta.SetMetaItems(list, append(out.Meta.MetaItems(list), model.MetaItem{ID: id, Name: name}))
	out.Stamp()
	return out, id, nil
}

// RenameMetaItem updates an item's name in place, preserving list order.
// Renaming an item to its current name is a no-op, not an error.
func RenameMetaItem(doc *model.Document, list model.MetaList, id, name string) (*model.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	items := doc.Meta.MetaItems(list)
	if items == nil {
		return nil, fmt.Errorf("unknown meta list %q", list)
	}
	idx := -1
	for i, item := range items {
		if item.ID == id {
			idx = i
			continue
		}
		if strings.EqualFold(item.Name, name) {
			return nil, fmt.Errorf("%s already has an item named %q", list, item.Name)
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("no %s item with id %q", list, id)
	}
	if items[idx].Name == name {
		return doc, nil
	}
	out := doc.Clone()
	renamed := out.Meta.MetaItems(list)
	renamed[idx].Name = name
	out.Stamp()
	return out, nil
}

// RemoveMetaItem deletes an item from a lookup list. Removal is refused
// with ErrMetaInUse while any tracker entry still references the item.
func RemoveMetaItem(doc *model.Document, list model.MetaList, id string) (*model.Document, error) {
	items := doc.Meta.MetaItems(list)
	if items == nil {
		return nil, fmt.Errorf("unknown meta list %q", list)
	}
	idx := -1
	for i, item := range items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("no %s item with id %q", list, id)
	}
	if n := UsageCount(doc, list, id); n > 0 {
		return nil, fmt.Errorf("%w: %q is referenced by %d entries", ErrMetaInUse, items[idx].Name, n)
	}
	out := doc.Clone()
	kept := out.Meta.MetaItems(list)
	out.Meta.SetMetaItems(list, append(kept[:idx], kept[idx+1:]...))
	out.Stamp()
	return out, nil
}
