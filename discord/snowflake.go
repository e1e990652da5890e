package discord

import (
	"strconv"
	"time"
)

// Epoch is the Discord epoch (2015-01-01T00:00:00Z) in milliseconds,
// used as the time base for all snowflake IDs.
const Epoch int64 = 1420070400000

// Snowflake is a 64-bit unique identifier. The top 42 bits embed the
// creation time relative to Epoch, so snowflakes sort by creation time.
type Snowflake uint64

// ParseSnowflake parses the decimal string form used on the wire.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return Snowflake(v), nil
}

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Time returns the creation time embedded in the snowflake.
func (s Snowflake) Time() time.Time {
	ms := int64(s>>22) + Epoch
	return time.UnixMilli(ms).UTC()
}

// IsZero reports whether the snowflake is unset. Used by the JSON encoder
// to drop empty optional ID fields.
func (s Snowflake) IsZero() bool {
	return s == 0
}

// Discord serializes snowflakes as strings to avoid precision loss in
// javascript clients. We accept both forms on decode.

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Snowflake) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' {
		str = str[1 : len(str)-1]
	}
	if str == "null" || str == "" {
		*s = 0
		return nil
	}
	v, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return err
	}
	*s = Snowflake(v)
	return nil
}
