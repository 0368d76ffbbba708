// File: constants.go — shared fixed identifiers used by constructors.

package builder

// centerVertexID is the fixed hub ID used by Star and Wheel.
const centerVertexID = "Center"
