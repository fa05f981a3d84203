// Package knowledge implements the frame knowledge base: emotion frames,
// lexical triggers with fuzzy prefix matching, and the modifier and
// role-marker tables.
//
// A Base is built once at startup from validated tables and is immutable
// afterwards, so it supports unsynchronized concurrent reads from any number
// of in-flight classification calls. Trigger lookup goes through a bucketed
// prefix index rather than a scan over all triggers.
package knowledge
