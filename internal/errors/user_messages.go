package errors

// User-friendly error messages
const (
	MsgNotImage           = "File must be an image"
	MsgInvalidUpload      = "Please upload a photo using the 'file' form field."
	MsgFileTooLarge       = "The uploaded photo is too large. Please upload a smaller image."
	MsgServiceUnavailable = "We're unable to analyze photos right now. Please try again in a few minutes."
	MsgRateLimited        = "You're sending requests too quickly! Please wait a moment and try again."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)

// Analysis outcome messages returned with success=false
const (
	MsgNoTextFound       = "No text found in image"
	MsgNoAddressFound    = "Could not find an address in the image"
	MsgGeocodeFailed     = "Could not geocode address"
	MsgAnalysisSucceeded = "House information retrieved successfully"
)
