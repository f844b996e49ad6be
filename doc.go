/*
Package kv3 builds and writes KeyValues documents, the brace-delimited text
format used by modeldoc (.vmdl) and similar asset files. A document is a
tree of typed records under a versioned header comment:

	<!-- kv3 encoding:text:version{e21c7f3c-8a33-41c5-9977-a76d3a32aa0d} format:modeldoc28:version{fb63b6ca-f435-4aa0-a2c7-c66ddc651dca} -->
	{
	    rootNode = {
	        _class = "RootNode"
	    }
	}

The package only writes the format. It does not parse it, validate what a
property means, or touch the file system.

Building a tree

A Node has a class, an optional name, ordered properties and ordered
children. Property values can be the typed literals of this package
(Vec3, Bool, Arr, ...) or plain Go values:

	bone := kv3.NewNode("DefineBone", "test_bone",
		kv3.Prop("origin", kv3.Vec3(15, 0, 0)),
		kv3.Prop("do_not_discard", kv3.Bool(false)),
		kv3.Prop("parent_bone", "head_0"),
	)

	scratch := kv3.NewNode("ScratchArea", "")
	scratch.AddChild(bone)

	root := kv3.NewNode("RootNode", "")
	root.AddChild(scratch)

Property order is the order of insertion. Setting an existing key replaces
the value in place.

Writing documents

A Document binds root nodes to keys under a Header:

	h, err := kv3.NewHeader(kv3.FamilyKV3, kv3.WithFormat("modeldoc28"))
	if err != nil {
		// handle error
	}
	doc := kv3.NewDocument(h)
	doc.AddRoot("rootNode", root)
	text := doc.Text()

Node.ToKV is a shortcut for a document with a single root. Marshal and
Encoder accept options for the indentation width and the string escaping
policy:

	out, err := kv3.Marshal(doc, kv3.StringEscaping(kv3.EscapeNone))

By default embedded newlines in strings are written as \n; no other
character is escaped.
*/
package kv3
