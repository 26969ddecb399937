// Package vault places notes inside the user's note directory tree.
//
// This package handles:
//   - Destination resolution by location policy
//   - Exclusive note creation (existing notes are never overwritten)
//   - Parent directory creation
//
// # Placement
//
// Resolve maps a file name and a Location to a normalized path:
//
//	v := vault.New("/home/user/vault", "Inbox")
//
//	v.Resolve("my-post.md", vault.LocationRoot, "")            // <root>/my-post.md
//	v.Resolve("my-post.md", vault.LocationPreferred, "")       // <root>/Inbox/my-post.md
//	v.Resolve("my-post.md", vault.LocationCustom, "Inbox/URLs") // <root>/Inbox/URLs/my-post.md
//
// # Creation
//
// CreateNote performs an exclusive create. A conflicting note surfaces as
// ErrNoteExists, the one failure that gets its own user-facing message:
//
//	err := v.CreateNote(path, content)
//	if errors.Is(err, vault.ErrNoteExists) {
//	    // tell the user which title collided; nothing was written
//	}
package vault
