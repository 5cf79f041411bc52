// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package ast

import (
	"bytes"
	"encoding/json"

	"github.com/mdhender/icumf/internal/icu/position"
)

func (n *Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind          `json:"type"`
		Value    string        `json:"value"`
		Location position.Span `json:"location"`
	}{KindLiteral, n.Value, n.Span})
}

func (n *Argument) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind          `json:"type"`
		Value    string        `json:"value"`
		Location position.Span `json:"location"`
	}{KindArgument, n.Value, n.Span})
}

func (n *Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind           `json:"type"`
		Value    string         `json:"value"`
		Location position.Span  `json:"location"`
		Style    NumberArgStyle `json:"style,omitempty"`
	}{KindNumber, n.Value, n.Span, n.Style})
}

func (n *Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind             `json:"type"`
		Value    string           `json:"value"`
		Location position.Span    `json:"location"`
		Style    DateTimeArgStyle `json:"style,omitempty"`
	}{KindDate, n.Value, n.Span, n.Style})
}

func (n *Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind             `json:"type"`
		Value    string           `json:"value"`
		Location position.Span    `json:"location"`
		Style    DateTimeArgStyle `json:"style,omitempty"`
	}{KindTime, n.Value, n.Span, n.Style})
}

func (n *Select) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind          `json:"type"`
		Value    string        `json:"value"`
		Location position.Span `json:"location"`
		Options  SelectorMap   `json:"options"`
	}{KindSelect, n.Value, n.Span, n.Options})
}

func (n *Plural) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       Kind          `json:"type"`
		Value      string        `json:"value"`
		Location   position.Span `json:"location"`
		Options    SelectorMap   `json:"options"`
		Offset     int           `json:"offset"`
		PluralType PluralType    `json:"pluralType"`
	}{KindPlural, n.Value, n.Span, n.Options, n.Offset, n.PluralType})
}

func (n *Pound) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind          `json:"type"`
		Location position.Span `json:"location"`
	}{KindPound, n.Span})
}

func (n *Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind          `json:"type"`
		Value    string        `json:"value"`
		Location position.Span `json:"location"`
		Children Message       `json:"children"`
	}{KindTag, n.Value, n.Span, n.Children})
}

// MarshalJSON renders a SelectorMap as a keyed object, preserving insertion
// order rather than the alphabetical order encoding/json would otherwise
// impose on a Go map.
func (m SelectorMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Option)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o PluralOrSelectOption) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    Message       `json:"value"`
		Location position.Span `json:"location"`
	}{o.Value, o.Span})
}
