package serializer

// StdoutURI is the special path indicating output should be written to stdout.
const StdoutURI = "-"
