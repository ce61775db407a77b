package common

// RedactedValue replaces sensitive attribute values in log output.
const RedactedValue = "[REDACTED]"

// SaltSize is the number of random bytes drawn for every credential salt.
const SaltSize = 16
