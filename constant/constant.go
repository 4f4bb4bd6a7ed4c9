package constant

// ProjectName namespaces config and cache directories.
const ProjectName = "recents"
