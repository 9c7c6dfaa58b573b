// Package wizard implements the interactive launch questionnaire.
//
// The wizard walks the user through network, wallet, fee, token and
// listing choices in grouped forms, re-prompting until each answer is
// valid, and maps the answers onto a config.Session.
package wizard
