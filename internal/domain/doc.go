// Package domain contains the grade conversion model for ibnoten.
//
// The domain is terminal- and format-agnostic: it does not depend on styling,
// key input or encoders. UI and infra packages map into/from these types.
package domain
