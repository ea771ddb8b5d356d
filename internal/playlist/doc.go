// Package playlist reads playlist files (CSV or plain text) and writes
// Jellyfin-native playlist XML.
package playlist
