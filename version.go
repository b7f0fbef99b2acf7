package sapling

// Version is the sapling release version.
const Version = "0.3.0"
