package serializers

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"unicode/utf8"
)

const (
	maxEmbedTitle       = 256
	maxEmbedDescription = 4096
	maxEmbedFields      = 25
	maxEmbedFieldName   = 256
	maxEmbedFieldValue  = 1024
	maxEmbedFooterText  = 2048
	maxEmbedAuthorName  = 256
	maxEmbedColour      = 0xFFFFFF
)

var (
	embedKeys = []string{
		"author", "color", "description", "fields", "footer", "image",
		"provider", "thumbnail", "timestamp", "title", "type", "url", "video",
	}
	embedRequiredOneOf = []string{"description", "fields", "image", "title", "video"}
)

// validateEmbed checks a Discord embed object and returns the messages for
// everything wrong with it.
func validateEmbed(raw json.RawMessage) []string {
	var embed map[string]any
	if err := json.Unmarshal(raw, &embed); err != nil || embed == nil {
		return []string{"Embed must be a JSON object."}
	}

	var msgs []string
	addf := func(format string, args ...any) {
		msgs = append(msgs, fmt.Sprintf(format, args...))
	}

	keys := make([]string, 0, len(embed))
	for k := range embed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !slices.Contains(embedKeys, k) {
			addf("Unknown field name: '%s'", k)
		}
	}

	hasContent := false
	for _, k := range embedRequiredOneOf {
		if v, ok := embed[k]; ok && !isEmptyValue(v) {
			hasContent = true
			break
		}
	}
	if !hasContent {
		addf("Embed must contain one of the fields %v.", embedRequiredOneOf)
	}

	checkText := func(value any, field string, limit int, required bool) {
		s, ok := value.(string)
		switch {
		case value == nil && !required:
		case !ok:
			addf("Embed %s must be a string.", field)
		case required && s == "":
			addf("Embed %s must not be empty.", field)
		case utf8.RuneCountInString(s) > limit:
			addf("Embed %s must not exceed %d characters.", field, limit)
		}
	}

	if v, ok := embed["title"]; ok {
		checkText(v, "title", maxEmbedTitle, false)
	}
	if v, ok := embed["description"]; ok {
		checkText(v, "description", maxEmbedDescription, false)
	}

	if v, ok := embed["color"]; ok {
		c, isNum := v.(float64)
		if !isNum || c < 0 || c > maxEmbedColour || c != float64(int64(c)) {
			addf("Embed color must be an integer between 0 and %d.", maxEmbedColour)
		}
	}

	if v, ok := embed["fields"]; ok {
		fields, isList := v.([]any)
		switch {
		case !isList:
			addf("Embed fields must be a list.")
		case len(fields) > maxEmbedFields:
			addf("Embed must not contain more than %d fields.", maxEmbedFields)
		default:
			for i, f := range fields {
				obj, isObj := f.(map[string]any)
				if !isObj {
					addf("Embed field %d must be an object.", i)
					continue
				}
				checkText(obj["name"], fmt.Sprintf("field %d name", i), maxEmbedFieldName, true)
				checkText(obj["value"], fmt.Sprintf("field %d value", i), maxEmbedFieldValue, true)
				if inline, has := obj["inline"]; has {
					if _, isBool := inline.(bool); !isBool {
						addf("Embed field %d inline must be a boolean.", i)
					}
				}
			}
		}
	}

	if v, ok := embed["footer"]; ok {
		if obj, isObj := v.(map[string]any); isObj {
			checkText(obj["text"], "footer text", maxEmbedFooterText, true)
		} else {
			addf("Embed footer must be an object.")
		}
	}

	if v, ok := embed["author"]; ok {
		if obj, isObj := v.(map[string]any); isObj {
			checkText(obj["name"], "author name", maxEmbedAuthorName, true)
		} else {
			addf("Embed author must be an object.")
		}
	}

	return msgs
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}
