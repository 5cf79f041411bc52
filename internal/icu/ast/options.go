// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package ast

// Enum-valued fields of NumberFormatOptions/DateTimeFormatOptions. Each is a
// defined string type so the zero value is distinguishable from "unset"
// only through the surrounding pointer, matching ECMA-402-shaped options
// records.

type Notation string

const (
	NotationStandard    Notation = "standard"
	NotationScientific  Notation = "scientific"
	NotationEngineering Notation = "engineering"
	NotationCompact     Notation = "compact"
)

type CompactDisplay string

const (
	CompactDisplayShort CompactDisplay = "short"
	CompactDisplayLong  CompactDisplay = "long"
)

type LocaleMatcher string

const (
	LocaleMatcherLookup  LocaleMatcher = "lookup"
	LocaleMatcherBestFit LocaleMatcher = "best fit"
)

type NumberStyle string

const (
	NumberStyleDecimal  NumberStyle = "decimal"
	NumberStylePercent  NumberStyle = "percent"
	NumberStyleCurrency NumberStyle = "currency"
	NumberStyleUnit     NumberStyle = "unit"
)

type CurrencySign string

const (
	CurrencySignStandard   CurrencySign = "standard"
	CurrencySignAccounting CurrencySign = "accounting"
)

type SignDisplay string

const (
	SignDisplayAuto       SignDisplay = "auto"
	SignDisplayAlways     SignDisplay = "always"
	SignDisplayNever      SignDisplay = "never"
	SignDisplayExceptZero SignDisplay = "exceptZero"
)

type TrailingZeroDisplay string

const (
	TrailingZeroDisplayAuto           TrailingZeroDisplay = "auto"
	TrailingZeroDisplayStripIfInteger TrailingZeroDisplay = "stripIfInteger"
)

type RoundingPriority string

const (
	RoundingPriorityAuto           RoundingPriority = "auto"
	RoundingPriorityMorePrecision  RoundingPriority = "morePrecision"
	RoundingPriorityLessPrecision  RoundingPriority = "lessPrecision"
)

type CurrencyDisplay string

const (
	CurrencyDisplaySymbol       CurrencyDisplay = "symbol"
	CurrencyDisplayNarrowSymbol CurrencyDisplay = "narrowSymbol"
	CurrencyDisplayCode         CurrencyDisplay = "code"
	CurrencyDisplayName         CurrencyDisplay = "name"
)

type UnitDisplay string

const (
	UnitDisplayShort  UnitDisplay = "short"
	UnitDisplayNarrow UnitDisplay = "narrow"
	UnitDisplayLong   UnitDisplay = "long"
)

// NumberFormatOptions is the structured form of a number skeleton. Every
// field is optional; unset fields are omitted from JSON serialization.
type NumberFormatOptions struct {
	Notation                 *Notation            `json:"notation,omitempty"`
	CompactDisplay           *CompactDisplay      `json:"compactDisplay,omitempty"`
	LocaleMatcher            *LocaleMatcher       `json:"localeMatcher,omitempty"`
	Style                    *NumberStyle         `json:"style,omitempty"`
	Unit                     *string              `json:"unit,omitempty"`
	Currency                 *string              `json:"currency,omitempty"`
	CurrencySign             *CurrencySign        `json:"currencySign,omitempty"`
	SignDisplay              *SignDisplay         `json:"signDisplay,omitempty"`
	NumberingSystem          *string              `json:"numberingSystem,omitempty"`
	TrailingZeroDisplay      *TrailingZeroDisplay `json:"trailingZeroDisplay,omitempty"`
	RoundingPriority         *RoundingPriority    `json:"roundingPriority,omitempty"`
	Scale                    *float64             `json:"scale,omitempty"`
	UseGrouping              *bool                `json:"useGrouping,omitempty"`
	MinimumIntegerDigits     *int                 `json:"minimumIntegerDigits,omitempty"`
	MaximumIntegerDigits     *int                 `json:"maximumIntegerDigits,omitempty"`
	MinimumFractionDigits    *int                 `json:"minimumFractionDigits,omitempty"`
	MaximumFractionDigits    *int                 `json:"maximumFractionDigits,omitempty"`
	MinimumSignificantDigits *int                 `json:"minimumSignificantDigits,omitempty"`
	MaximumSignificantDigits *int                 `json:"maximumSignificantDigits,omitempty"`
	CurrencyDisplay          *CurrencyDisplay     `json:"currencyDisplay,omitempty"`
	UnitDisplay              *UnitDisplay         `json:"unitDisplay,omitempty"`
}

// DateTimeFormatOptions is the structured form of a date/time skeleton. The
// skeleton-letter-to-field translation is left to datetimeskeleton (a stub);
// this surface is fixed regardless.
type DateTimeFormatOptions struct {
	LocaleMatcher         *LocaleMatcher `json:"localeMatcher,omitempty"`
	Weekday               *string        `json:"weekday,omitempty"`
	Era                   *string        `json:"era,omitempty"`
	Year                  *string        `json:"year,omitempty"`
	Month                 *string        `json:"month,omitempty"`
	Day                   *string        `json:"day,omitempty"`
	Hour                  *string        `json:"hour,omitempty"`
	Minute                *string        `json:"minute,omitempty"`
	Second                *string        `json:"second,omitempty"`
	TimeZoneName          *string        `json:"timeZoneName,omitempty"`
	Hour12                *bool          `json:"hour12,omitempty"`
	HourCycle             *string        `json:"hourCycle,omitempty"`
	TimeZone              *string        `json:"timeZone,omitempty"`
	FormatMatcher         *string        `json:"formatMatcher,omitempty"`
	DateStyle             *string        `json:"dateStyle,omitempty"`
	TimeStyle             *string        `json:"timeStyle,omitempty"`
	DayPeriod             *string        `json:"dayPeriod,omitempty"`
	FractionalSecondDigits *int          `json:"fractionalSecondDigits,omitempty"`
}
