package known

import (
	"slices"
	"strings"
)

// AttributeSet groups attribute names that apply to every element.
type AttributeSet string

const (
	GlobalAttributes AttributeSet = "global"
	AriaAttributes   AttributeSet = "aria"
	HtmxAttributes   AttributeSet = "htmx"
)

var globalAttributes = sortedNames(
	"accesskey", "autocapitalize", "autofocus", "class", "contenteditable", "dir",
	"draggable", "enterkeyhint", "hidden", "id", "inert", "inputmode", "is",
	"itemid", "itemprop", "itemref", "itemscope", "itemtype", "lang", "nonce",
	"part", "popover", "role", "slot", "spellcheck", "style", "tabindex", "title",
	"translate",
)

var ariaAttributes = sortedNames(
	"aria-activedescendant", "aria-atomic", "aria-busy", "aria-checked",
	"aria-controls", "aria-current", "aria-describedby", "aria-description",
	"aria-disabled", "aria-expanded", "aria-haspopup", "aria-hidden",
	"aria-invalid", "aria-label", "aria-labelledby", "aria-live", "aria-modal",
	"aria-pressed", "aria-readonly", "aria-required", "aria-selected",
)

var htmxAttributes = sortedNames(
	"hx-boost", "hx-confirm", "hx-delete", "hx-disabled-elt", "hx-encoding",
	"hx-ext", "hx-get", "hx-headers", "hx-include", "hx-indicator", "hx-params",
	"hx-patch", "hx-post", "hx-push-url", "hx-put", "hx-replace-url", "hx-select",
	"hx-select-oob", "hx-swap", "hx-swap-oob", "hx-sync", "hx-target",
	"hx-trigger", "hx-vals",
)

func sortedNames(names ...string) []string {
	slices.Sort(names)
	return names
}

// NormalizeName maps an identifier attribute name onto its HTML spelling by
// replacing underscores with hyphens: data_id becomes data-id.
func NormalizeName(ident string) string {
	return strings.ReplaceAll(ident, "_", "-")
}

// Attributes returns the sorted names of set.
func Attributes(set AttributeSet) []string {
	switch set {
	case GlobalAttributes:
		return slices.Clone(globalAttributes)
	case AriaAttributes:
		return slices.Clone(ariaAttributes)
	case HtmxAttributes:
		return slices.Clone(htmxAttributes)
	}
	return nil
}

// AttributeSetOf reports which set name belongs to.
func AttributeSetOf(name string) (AttributeSet, bool) {
	switch {
	case contains(globalAttributes, name):
		return GlobalAttributes, true
	case contains(ariaAttributes, name):
		return AriaAttributes, true
	case contains(htmxAttributes, name):
		return HtmxAttributes, true
	}
	return "", false
}

// IsKnownAttribute reports whether name is a global, ARIA or htmx attribute,
// a data-* attribute or an hx-on:* handler. Element-specific attributes such
// as href are not tracked.
func IsKnownAttribute(name string) bool {
	if strings.HasPrefix(name, "data-") && len(name) > len("data-") {
		return true
	}
	if strings.HasPrefix(name, "hx-on:") {
		return true
	}
	_, ok := AttributeSetOf(name)
	return ok
}

func contains(sorted []string, name string) bool {
	_, ok := slices.BinarySearch(sorted, name)
	return ok
}
