package contentvalidator

// Version is the module release, reported by the CLI.
const Version = "0.4.0"
