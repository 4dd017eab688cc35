// Package policy implements the privacy policy engine: the mapping from a
// privacy level to the set of metadata tags that must be removed.
package policy

import (
	"sort"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

// Policy is an immutable removal policy for one privacy level. Construct it
// once per run with ForLevel and share it read-only across files.
type Policy struct {
	level  model.PrivacyLevel
	remove map[model.TagID]bool
}

// ForLevel builds the policy for a privacy level. Removal sets are built by
// folding the deltas of every level up to and including the requested one, so
// a higher level's set is a superset of every lower level's by construction.
// Pinned tags are stripped from the result afterwards; they survive every
// level, including paranoid.
func ForLevel(level model.PrivacyLevel) *Policy {
	remove := make(map[model.TagID]bool)

	for _, l := range model.Levels() {
		if l > level {
			break
		}
		for _, t := range levelDeltas[l] {
			remove[t] = true
		}
	}

	for _, t := range pinnedTags {
		delete(remove, t)
	}

	return &Policy{level: level, remove: remove}
}

// Level returns the privacy level this policy was built for.
func (p *Policy) Level() model.PrivacyLevel {
	return p.level
}

// ShouldPreserve reports whether a tag survives this policy. At paranoid,
// unknown tags are removed: only the pinned camera settings survive.
func (p *Policy) ShouldPreserve(tag model.TagID) bool {
	if p.level == model.LevelParanoid {
		return pinned[tag]
	}
	return !p.remove[tag]
}

// TagsToRemove returns the removal set, sorted for deterministic output.
func (p *Policy) TagsToRemove() []model.TagID {
	tags := make([]model.TagID, 0, len(p.remove))
	for t := range p.remove {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Selection describes a removal request for a backend. For levels below
// paranoid it is the explicit tag set; at paranoid it is a full wipe with a
// preserve list, which is how backends express "everything except pinned".
type Selection struct {
	// Tags to strip. Ignored when WipeAll is set.
	Tags []model.TagID

	// WipeAll requests removal of all metadata.
	WipeAll bool

	// Preserve lists tags to restore after a wipe.
	Preserve []model.TagID
}

// Selection returns the removal selection for this policy.
func (p *Policy) Selection() Selection {
	if p.level == model.LevelParanoid {
		return Selection{WipeAll: true, Preserve: PinnedTags()}
	}
	return Selection{Tags: p.TagsToRemove()}
}

// Categorize maps a tag to its reporting category. Total: unknown tags map
// to CategoryOther.
func Categorize(tag model.TagID) model.PrivacyCategory {
	if c, ok := categories[tag]; ok {
		return c
	}
	return model.CategoryOther
}

// IsPinned reports whether a tag is on the pinned-preserved list.
func IsPinned(tag model.TagID) bool {
	return pinned[tag]
}

// PinnedTags returns the pinned-preserved tags, sorted.
func PinnedTags() []model.TagID {
	tags := make([]model.TagID, len(pinnedTags))
	copy(tags, pinnedTags)
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Describe returns a human-readable account of what a level removes.
func Describe(level model.PrivacyLevel) []string {
	switch level {
	case model.LevelMinimal:
		return []string{"GPS coordinates", "location data"}
	case model.LevelStandard:
		return []string{"GPS data", "camera serial numbers", "unique device IDs", "personal information"}
	case model.LevelStrict:
		return []string{"GPS data", "device identifiers", "timestamps", "user comments", "software information", "description metadata", "embedded XMP/IPTC blocks"}
	case model.LevelParanoid:
		return []string{"all metadata except essential camera settings"}
	default:
		return nil
	}
}
