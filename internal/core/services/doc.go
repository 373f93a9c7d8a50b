// Package services implements the driving ports on top of the driven ones.
//
// IngestOrchestrator keeps the document index in step with the source
// catalog and the tokenizer version. SearchService parses queries and
// runs them against subtitles or verses. LibraryService lists what is
// indexed. SettingsService maps the key-value config store onto typed
// settings.
package services
