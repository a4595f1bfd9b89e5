package common

// UnknownStr is the fallback text for enum values outside their defined range.
const UnknownStr = "unknown"
