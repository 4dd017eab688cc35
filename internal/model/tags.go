package model

// TagID names a single metadata field. Values follow standard EXIF field
// naming so they can be matched against parser output and passed to removal
// backends directly.
type TagID string

// GPS and location tags.
const (
	TagGPSVersionID        TagID = "GPSVersionID"
	TagGPSLatitudeRef      TagID = "GPSLatitudeRef"
	TagGPSLatitude         TagID = "GPSLatitude"
	TagGPSLongitudeRef     TagID = "GPSLongitudeRef"
	TagGPSLongitude        TagID = "GPSLongitude"
	TagGPSAltitudeRef      TagID = "GPSAltitudeRef"
	TagGPSAltitude         TagID = "GPSAltitude"
	TagGPSTimeStamp        TagID = "GPSTimeStamp"
	TagGPSSatellites       TagID = "GPSSatellites"
	TagGPSStatus           TagID = "GPSStatus"
	TagGPSMeasureMode      TagID = "GPSMeasureMode"
	TagGPSDOP              TagID = "GPSDOP"
	TagGPSSpeedRef         TagID = "GPSSpeedRef"
	TagGPSSpeed            TagID = "GPSSpeed"
	TagGPSTrackRef         TagID = "GPSTrackRef"
	TagGPSTrack            TagID = "GPSTrack"
	TagGPSImgDirectionRef  TagID = "GPSImgDirectionRef"
	TagGPSImgDirection     TagID = "GPSImgDirection"
	TagGPSMapDatum         TagID = "GPSMapDatum"
	TagGPSDestLatitudeRef  TagID = "GPSDestLatitudeRef"
	TagGPSDestLatitude     TagID = "GPSDestLatitude"
	TagGPSDestLongitudeRef TagID = "GPSDestLongitudeRef"
	TagGPSDestLongitude    TagID = "GPSDestLongitude"
	TagGPSDestBearingRef   TagID = "GPSDestBearingRef"
	TagGPSDestBearing      TagID = "GPSDestBearing"
	TagGPSDestDistanceRef  TagID = "GPSDestDistanceRef"
	TagGPSDestDistance     TagID = "GPSDestDistance"
	TagGPSProcessingMethod TagID = "GPSProcessingMethod"
	TagGPSAreaInformation  TagID = "GPSAreaInformation"
	TagGPSDateStamp        TagID = "GPSDateStamp"
	TagGPSDifferential     TagID = "GPSDifferential"
)

// Device-identifying tags.
const (
	TagCameraSerialNumber   TagID = "CameraSerialNumber"
	TagLensSerialNumber     TagID = "LensSerialNumber"
	TagBodySerialNumber     TagID = "BodySerialNumber"
	TagInternalSerialNumber TagID = "InternalSerialNumber"
	TagUniqueCameraModel    TagID = "UniqueCameraModel"
)

// Personal information tags.
const (
	TagCameraOwnerName TagID = "CameraOwnerName"
	TagArtist          TagID = "Artist"
	TagCopyright       TagID = "Copyright"
	TagUserComment     TagID = "UserComment"
)

// Timestamp tags.
const (
	TagDateTime            TagID = "DateTime"
	TagDateTimeOriginal    TagID = "DateTimeOriginal"
	TagDateTimeDigitized   TagID = "DateTimeDigitized"
	TagSubSecTime          TagID = "SubSecTime"
	TagSubSecTimeOriginal  TagID = "SubSecTimeOriginal"
	TagSubSecTimeDigitized TagID = "SubSecTimeDigitized"
)

// Software and processing tags.
const (
	TagSoftware           TagID = "Software"
	TagProcessingSoftware TagID = "ProcessingSoftware"
	TagHostComputer       TagID = "HostComputer"
)

// Description metadata tags.
const (
	TagImageDescription TagID = "ImageDescription"
	TagDocumentName     TagID = "DocumentName"
	TagPageName         TagID = "PageName"
	TagXPTitle          TagID = "XPTitle"
	TagXPComment        TagID = "XPComment"
	TagXPAuthor         TagID = "XPAuthor"
	TagXPKeywords       TagID = "XPKeywords"
	TagXPSubject        TagID = "XPSubject"
)

// Embedded metadata blocks. These are whole-block selectors for removal
// backends, not individual EXIF fields.
const (
	TagXMPBlock  TagID = "XMP"
	TagIPTCBlock TagID = "IPTC"
)

// Essential camera settings, pinned preserved at every privacy level.
const (
	TagExposureTime            TagID = "ExposureTime"
	TagFNumber                 TagID = "FNumber"
	TagISO                     TagID = "ISO"
	TagISOSpeedRatings         TagID = "ISOSpeedRatings"
	TagFocalLength             TagID = "FocalLength"
	TagFocalLengthIn35mmFilm   TagID = "FocalLengthIn35mmFilm"
	TagExposureProgram         TagID = "ExposureProgram"
	TagMeteringMode            TagID = "MeteringMode"
	TagFlash                   TagID = "Flash"
	TagColorSpace              TagID = "ColorSpace"
	TagWhiteBalance            TagID = "WhiteBalance"
	TagExposureMode            TagID = "ExposureMode"
	TagSceneCaptureType        TagID = "SceneCaptureType"
	TagContrast                TagID = "Contrast"
	TagSaturation              TagID = "Saturation"
	TagSharpness               TagID = "Sharpness"
	TagMake                    TagID = "Make"
	TagModel                   TagID = "Model"
	TagOrientation             TagID = "Orientation"
	TagXResolution             TagID = "XResolution"
	TagYResolution             TagID = "YResolution"
	TagResolutionUnit          TagID = "ResolutionUnit"
	TagYCbCrPositioning        TagID = "YCbCrPositioning"
	TagExifVersion             TagID = "ExifVersion"
	TagComponentsConfiguration TagID = "ComponentsConfiguration"
	TagCompressedBitsPerPixel  TagID = "CompressedBitsPerPixel"
	TagPixelXDimension         TagID = "PixelXDimension"
	TagPixelYDimension         TagID = "PixelYDimension"
)
