package policy

import "github.com/WerlingM/privacy-exif-cleaner/internal/model"

// Tag groups. Each group is one level delta or one category; the level tables
// below are assembled from them so no tag literal appears twice.

var gpsTags = []model.TagID{
	model.TagGPSVersionID,
	model.TagGPSLatitudeRef,
	model.TagGPSLatitude,
	model.TagGPSLongitudeRef,
	model.TagGPSLongitude,
	model.TagGPSAltitudeRef,
	model.TagGPSAltitude,
	model.TagGPSTimeStamp,
	model.TagGPSSatellites,
	model.TagGPSStatus,
	model.TagGPSMeasureMode,
	model.TagGPSDOP,
	model.TagGPSSpeedRef,
	model.TagGPSSpeed,
	model.TagGPSTrackRef,
	model.TagGPSTrack,
	model.TagGPSImgDirectionRef,
	model.TagGPSImgDirection,
	model.TagGPSMapDatum,
	model.TagGPSDestLatitudeRef,
	model.TagGPSDestLatitude,
	model.TagGPSDestLongitudeRef,
	model.TagGPSDestLongitude,
	model.TagGPSDestBearingRef,
	model.TagGPSDestBearing,
	model.TagGPSDestDistanceRef,
	model.TagGPSDestDistance,
	model.TagGPSProcessingMethod,
	model.TagGPSAreaInformation,
	model.TagGPSDateStamp,
	model.TagGPSDifferential,
}

var deviceTags = []model.TagID{
	model.TagCameraSerialNumber,
	model.TagLensSerialNumber,
	model.TagBodySerialNumber,
	model.TagInternalSerialNumber,
	model.TagUniqueCameraModel,
}

var personalTags = []model.TagID{
	model.TagCameraOwnerName,
	model.TagArtist,
	model.TagCopyright,
	model.TagUserComment,
}

var temporalTags = []model.TagID{
	model.TagDateTime,
	model.TagDateTimeOriginal,
	model.TagDateTimeDigitized,
	model.TagSubSecTime,
	model.TagSubSecTimeOriginal,
	model.TagSubSecTimeDigitized,
}

var softwareTags = []model.TagID{
	model.TagSoftware,
	model.TagProcessingSoftware,
	model.TagHostComputer,
}

var descriptionTags = []model.TagID{
	model.TagImageDescription,
	model.TagDocumentName,
	model.TagPageName,
	model.TagXPTitle,
	model.TagXPComment,
	model.TagXPAuthor,
	model.TagXPKeywords,
	model.TagXPSubject,
}

var blockTags = []model.TagID{
	model.TagXMPBlock,
	model.TagIPTCBlock,
}

// pinnedTags are preserved at every level, including paranoid. This is a
// hard invariant enforced in ForLevel, not a per-level choice.
var pinnedTags = []model.TagID{
	model.TagExposureTime,
	model.TagFNumber,
	model.TagISO,
	model.TagISOSpeedRatings,
	model.TagFocalLength,
	model.TagFocalLengthIn35mmFilm,
	model.TagExposureProgram,
	model.TagMeteringMode,
	model.TagFlash,
	model.TagColorSpace,
	model.TagWhiteBalance,
	model.TagExposureMode,
	model.TagSceneCaptureType,
	model.TagContrast,
	model.TagSaturation,
	model.TagSharpness,
	model.TagMake,
	model.TagModel,
	model.TagOrientation,
	model.TagXResolution,
	model.TagYResolution,
	model.TagResolutionUnit,
	model.TagYCbCrPositioning,
	model.TagExifVersion,
	model.TagComponentsConfiguration,
	model.TagCompressedBitsPerPixel,
	model.TagPixelXDimension,
	model.TagPixelYDimension,
}

// levelDeltas lists the tags each level adds on top of every lower level.
// The paranoid delta is the catch-all: every known non-pinned tag not already
// covered, filled in by init below.
var levelDeltas = map[model.PrivacyLevel][]model.TagID{
	model.LevelMinimal:  gpsTags,
	model.LevelStandard: concat(deviceTags, personalTags),
	model.LevelStrict:   concat(temporalTags, softwareTags, descriptionTags, blockTags),
}

var pinned = make(map[model.TagID]bool)

var categories = make(map[model.TagID]model.PrivacyCategory)

func init() {
	for _, t := range pinnedTags {
		pinned[t] = true
	}

	for _, group := range []struct {
		tags []model.TagID
		cat  model.PrivacyCategory
	}{
		{gpsTags, model.CategoryLocation},
		{deviceTags, model.CategoryDeviceID},
		{personalTags, model.CategoryPersonal},
		{temporalTags, model.CategoryTimestamp},
		{softwareTags, model.CategorySoftware},
		{pinnedTags, model.CategoryTechnical},
	} {
		for _, t := range group.tags {
			categories[t] = group.cat
		}
	}

	// Windows Explorer fields carry author/keyword text; the rest of the
	// description group is generic.
	for _, t := range descriptionTags {
		categories[t] = model.CategoryOther
	}
	for _, t := range []model.TagID{model.TagXPTitle, model.TagXPComment, model.TagXPAuthor, model.TagXPKeywords, model.TagXPSubject} {
		categories[t] = model.CategoryPersonal
	}

	// Paranoid removes every known tag that is not pinned.
	covered := make(map[model.TagID]bool)
	for _, delta := range levelDeltas {
		for _, t := range delta {
			covered[t] = true
		}
	}
	var paranoidDelta []model.TagID
	for t := range categories {
		if !pinned[t] && !covered[t] {
			paranoidDelta = append(paranoidDelta, t)
		}
	}
	levelDeltas[model.LevelParanoid] = paranoidDelta
}

func concat(groups ...[]model.TagID) []model.TagID {
	var all []model.TagID
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
