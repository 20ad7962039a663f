package domain

// IsApplication reports whether n is an application container.
func IsApplication(n *Node) bool {
	return n != nil && n.Kind == NodeFolder && n.Meta.Has(MetaApplicationTemplate) && n.Meta.Has(MetaExtensionTemplate)
}

// IsDraftRelease reports whether n is the draft release of its parent application.
func IsDraftRelease(n, parent *Node) bool {
	return n != nil && n.Kind == NodeFolder && n.Name == DraftReleaseName && IsApplication(parent)
}

// IsStableRelease reports whether n is a stable release of its parent application.
func IsStableRelease(n, parent *Node) bool {
	return n != nil && n.Kind == NodeFolder && n.Name != DraftReleaseName && IsApplication(parent)
}

// ReleaseRef locates the release that owns an artifact.
type ReleaseRef struct {
	Application *Node
	// Release is the stable release, or the draft release for draft artifacts.
	Release *Node
	// Revision is the draft revision container, nil for stable releases.
	Revision *Node
}

// Draft reports whether the artifact sits in the draft release.
func (r ReleaseRef) Draft() bool {
	return r.Revision != nil
}

// Container returns the node artifacts are placed under.
func (r ReleaseRef) Container() *Node {
	if r.Revision != nil {
		return r.Revision
	}
	return r.Release
}
