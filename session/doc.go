// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session stores in-progress questionnaire state in memory.

Each session is keyed by a random UUID token carried in the wizard
URLs. Nothing is persisted: abandoning a session or restarting the
server clears it, matching the page-lifetime scope of the form state.

# Operations

	sessions := session.NewStore(30 * time.Minute)
	sess := sessions.Start()

	state, ok := sessions.Snapshot(token)
	state, ok = sessions.Update(token, func(st *form.State) { ... })

Submission consumes the session atomically, so a rapid double submit
results in exactly one prediction:

	sess, ok := sessions.Consume(token) // second caller gets ok == false
	sessions.Restore(sess)              // on upstream failure, allow retry

Sessions expire after the TTL since their last update and are swept
when new sessions start.
*/
package session
