// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-payload-guard/fields"
	"github.com/MKhiriev/go-payload-guard/validators"
)

// Payload rules of the demo routes. All of them describe the same user
// document at different levels of strictness.

var userKeys = []validators.KeyEntry{
	validators.Key("name"),
	validators.Key("email"),
	validators.Key("address",
		validators.Key("city"),
	),
}

var userTypes = validators.Types{
	validators.TypeOf("name", fields.KindString),
	validators.TypeOf("email", fields.KindString),
	validators.TypeOf("age", fields.KindInt),
	validators.TypesOf("address",
		validators.TypeOf("city", fields.KindString),
	),
}

var userSpec = validators.Spec{
	validators.Field("name", fields.String(fields.DisallowEmpty(), fields.MaxLength(64))),
	validators.Field("email", fields.String(fields.Pattern(`[^@\s]+@[^@\s]+\.[a-z]+$`))),
	validators.Field("age", fields.Int(fields.Optional(), fields.MinValue(0), fields.MaxValue(150))),
	validators.Field("role", fields.String(fields.Optional(), fields.Enum("admin", "member", "guest"))),
	validators.Field("score", fields.Float(fields.Optional(), fields.Nullable())),
	validators.Field("tags", fields.List(fields.Optional(), fields.MaxLength(10))),
	validators.Field("active", fields.Boolean(fields.Optional())),
	validators.Object("address",
		validators.Field("city", fields.String(fields.DisallowEmpty())),
		validators.Field("zip", fields.String(fields.Optional(), fields.Pattern(`[0-9]{5}$`))),
	),
}
