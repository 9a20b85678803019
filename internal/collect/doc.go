// Package collect opens repeated throwaway sessions against a target URL and
// records every cookie the server sets, one timestamped sample per cookie per
// session. Each session posts the optional login payload first so
// authenticated cookies are captured too.
package collect
