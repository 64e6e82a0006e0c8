package contact

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedContact(t *testing.T) {
	t.Parallel()

	res := Validate(Contact{Name: "Bob", Email: "bob@x.com", Phone: "1234567890"})
	require.True(t, res.Valid)
	require.Empty(t, res.Errors)
	require.NoError(t, res.Err())

	// non-ASCII letters are not whitespace
	res = Validate(Contact{Name: "José", Email: "josé@exämple.com", Phone: "1234567890"})
	require.True(t, res.Valid)
}

func TestValidateRules(t *testing.T) {
	t.Parallel()

	base := Contact{Name: "Jane", Email: "jane@x.com", Phone: "5551234567"}
	cases := []struct {
		name  string
		c     Contact
		field Field
		msg   string
	}{
		{"empty name", base.With(FieldName, ""), FieldName, MsgNameRequired},
		{"email without at", base.With(FieldEmail, "jane.x.com"), FieldEmail, MsgInvalidEmail},
		{"email without dot in domain", base.With(FieldEmail, "jane@x"), FieldEmail, MsgInvalidEmail},
		{"email with space", base.With(FieldEmail, "ja ne@x.com"), FieldEmail, MsgInvalidEmail},
		{"email with no-break space", base.With(FieldEmail, "jane\u00a0doe@x.com"), FieldEmail, MsgInvalidEmail},
		{"email with vertical tab", base.With(FieldEmail, "a\vb@x.com"), FieldEmail, MsgInvalidEmail},
		{"email with em space", base.With(FieldEmail, "jane\u2003@x.com"), FieldEmail, MsgInvalidEmail},
		{"email with ideographic space in domain", base.With(FieldEmail, "jane@x\u3000y.com"), FieldEmail, MsgInvalidEmail},
		{"email with byte order mark", base.With(FieldEmail, "\ufeffjane@x.com"), FieldEmail, MsgInvalidEmail},
		{"email with two ats", base.With(FieldEmail, "a@b@c.com"), FieldEmail, MsgInvalidEmail},
		{"phone too short", base.With(FieldPhone, "123456789"), FieldPhone, MsgInvalidPhone},
		{"phone too long", base.With(FieldPhone, "1234567890123456"), FieldPhone, MsgInvalidPhone},
		{"phone with dashes", base.With(FieldPhone, "555-123-4567"), FieldPhone, MsgInvalidPhone},
		{"phone with plus", base.With(FieldPhone, "+15551234567"), FieldPhone, MsgInvalidPhone},
		{"phone with non ascii digits", base.With(FieldPhone, "١٢٣٤٥٦٧٨٩٠"), FieldPhone, MsgInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := Validate(tc.c)
			require.False(t, res.Valid)
			require.Len(t, res.Errors, 1)
			require.Equal(t, tc.msg, res.Errors[tc.field])
		})
	}
}

func TestValidatePhoneLengthBounds(t *testing.T) {
	t.Parallel()

	for _, phone := range []string{"1234567890", "123456789012345"} {
		res := Validate(Contact{Name: "n", Email: "n@x.io", Phone: phone})
		require.True(t, res.Valid, "phone %s", phone)
	}
}

func TestValidateWhitespaceNameIsAccepted(t *testing.T) {
	t.Parallel()

	// only the empty string is rejected
	res := Validate(Contact{Name: " ", Email: "a@b.co", Phone: "0123456789"})
	require.True(t, res.Valid)
}

func TestValidateCollectsEveryField(t *testing.T) {
	t.Parallel()

	res := Validate(Contact{})
	require.False(t, res.Valid)
	require.Equal(t, FieldErrors{
		FieldName:  MsgNameRequired,
		FieldEmail: MsgInvalidEmail,
		FieldPhone: MsgInvalidPhone,
	}, res.Errors)

	err := res.Err()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)
	require.True(t, strings.HasPrefix(err.Error(), "invalid contact: email:"))
}

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, f := range Fields() {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	_, err := ParseField("company")
	require.Error(t, err)
}
