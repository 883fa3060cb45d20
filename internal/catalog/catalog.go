// Package catalog holds the static content tables the smart engine selects
// from: nudge templates, personalization traits, mascot characters, badge
// definitions, the Islamic question bank, seasonal rules and the story shelf.
// Everything here is fixed data; behavior lives in the services.
package catalog

// Version identifies the content tables as a whole. Bump it whenever any
// table changes so seeded collections can be told apart from stale ones.
const Version = "1.2.0"
