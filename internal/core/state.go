package core

// SessionState is the authorization state of the playback service session.
type SessionState int

const (
	SessionUnauthenticated SessionState = iota
	SessionAuthenticating
	SessionWaitingForUserAuth
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticating:
		return "authenticating"
	case SessionWaitingForUserAuth:
		return "waiting_for_user_auth"
	case SessionAuthenticated:
		return "authenticated"
	}
	return "invalid"
}

// PlaybackStatus is derived each tick from the raw playback-state response.
type PlaybackStatus int

const (
	StatusUnknown PlaybackStatus = iota
	StatusPlaying
	StatusInactive
	StatusUnauthorized
	StatusForbidden
	StatusRateLimited
	StatusTransientError
)

func (s PlaybackStatus) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusPlaying:
		return "playing"
	case StatusInactive:
		return "inactive"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusForbidden:
		return "forbidden"
	case StatusRateLimited:
		return "rate_limited"
	case StatusTransientError:
		return "transient_error"
	}
	return "invalid"
}

// MarshalText lets statuses appear by name in JSON frames and log fields.
func (s PlaybackStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalText lets session states appear by name in JSON output.
func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
