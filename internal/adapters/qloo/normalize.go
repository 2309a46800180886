package qloo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/Agnik7/SuurAI/internal/core/domain"
)

const (
	defaultDescription = "No description available."
	defaultPublisher   = "Unknown Publisher"
)

// Placeholder ranges used when the source omits a numeric field. The values
// are deterministic per record (seeded from its identity) but stay inside
// the same bounds the product has always shown.
const (
	placeholderEpisodesMin = 10
	placeholderEpisodesMax = 200
	placeholderPopMin      = 50
	placeholderPopMax      = 100
)

// Normalize converts an arbitrary recommendation payload into a stable
// sequence of podcasts. It is total: any input yields a result, never an
// error. Arrays are normalized element by element in order; objects
// contribute their first array-valued property (in document order); anything
// else normalizes to an empty sequence.
func Normalize(raw json.RawMessage) []domain.Podcast {
	records := extractRecords(raw)
	podcasts := make([]domain.Podcast, len(records))
	for i, rec := range records {
		podcasts[i] = normalizeRecord(rec, i)
	}
	return podcasts
}

// extractRecords locates the record sequence inside the payload.
func extractRecords(raw json.RawMessage) []json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '[':
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil
		}
		return records
	case '{':
		return firstArrayProperty(trimmed)
	default:
		return nil
	}
}

// firstArrayProperty scans an object's own properties in document order and
// returns the first array-valued one. Token scanning is used because Go maps
// would lose the key order of the document.
func firstArrayProperty(obj []byte) []json.RawMessage {
	dec := json.NewDecoder(bytes.NewReader(obj))

	if _, err := dec.Token(); err != nil { // opening brace
		return nil
	}
	for dec.More() {
		if _, err := dec.Token(); err != nil { // property name
			return nil
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil
		}
		value = bytes.TrimSpace(value)
		if len(value) > 0 && value[0] == '[' {
			var records []json.RawMessage
			if err := json.Unmarshal(value, &records); err != nil {
				return nil
			}
			return records
		}
	}
	return nil
}

func normalizeRecord(raw json.RawMessage, i int) domain.Podcast {
	var fields map[string]any
	// Non-object elements (strings, numbers, null) normalize to a record
	// built entirely from defaults.
	_ = json.Unmarshal(raw, &fields)

	p := domain.Podcast{
		ID:          stringField(fields, "entity_id", "id"),
		Name:        stringField(fields, "name"),
		Description: stringField(fields, "description"),
		Publisher:   stringField(fields, "publisher", "channel"),
		ImageURL:    imageURL(fields),
	}

	if p.ID == "" {
		p.ID = fmt.Sprintf("podcast-%d", i)
	}
	if p.Name == "" {
		p.Name = fmt.Sprintf("Podcast %d", i+1)
	}
	if p.Description == "" {
		p.Description = defaultDescription
	}
	if p.Publisher == "" {
		p.Publisher = defaultPublisher
	}
	if p.ImageURL == "" {
		p.ImageURL = domain.FallbackImageURL
	}

	episodes, popularity := placeholderCounts(p.Name, i)
	if count, ok := intField(fields, "episode_count"); ok {
		p.EpisodeCount = count
	} else {
		p.EpisodeCount = episodes
	}
	if score, ok := popularityScore(fields); ok {
		p.PopularityScore = score
	} else {
		p.PopularityScore = popularity
	}

	return p
}

// placeholderCounts derives stable stand-in values for records missing
// numeric fields. Seeding from the record identity keeps repeated
// normalizations of the same payload identical.
func placeholderCounts(name string, i int) (episodes int, popularity int) {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(name))
	_, _ = hasher.Write([]byte{byte(i)})
	// #nosec G404 -- stand-in display values, not security-sensitive
	rng := rand.New(rand.NewSource(int64(hasher.Sum32())))

	episodes = placeholderEpisodesMin + rng.Intn(placeholderEpisodesMax-placeholderEpisodesMin+1)
	popularity = placeholderPopMin + rng.Intn(placeholderPopMax-placeholderPopMin+1)
	return episodes, popularity
}

func stringField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := fields[key].(string); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func intField(fields map[string]any, key string) (int, bool) {
	switch value := fields[key].(type) {
	case float64:
		if value >= 0 && value == math.Trunc(value) {
			return int(value), true
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && parsed >= 0 {
			return parsed, true
		}
	}
	return 0, false
}

// popularityScore scales source popularity to a 0..100 integer. Fractional
// values are treated as a 0..1 ratio; anything else is clamped.
func popularityScore(fields map[string]any) (int, bool) {
	value, ok := fields["popularity"].(float64)
	if !ok {
		return 0, false
	}
	if value <= 1 {
		value *= 100
	}
	score := int(math.Round(value))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, true
}

// imageURL picks the first available image URL from the known locations:
// a top-level images array, then properties.image (either a bare URL string
// or an object with a url field).
func imageURL(fields map[string]any) string {
	if images, ok := fields["images"].([]any); ok {
		for _, entry := range images {
			if image, ok := entry.(map[string]any); ok {
				if url, ok := image["url"].(string); ok && url != "" {
					return url
				}
			}
		}
	}

	properties, ok := fields["properties"].(map[string]any)
	if !ok {
		return ""
	}
	switch image := properties["image"].(type) {
	case string:
		return image
	case map[string]any:
		if url, ok := image["url"].(string); ok {
			return url
		}
	}
	return ""
}
