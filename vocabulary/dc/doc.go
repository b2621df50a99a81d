// Package dc provides IRI constants for the Dublin Core terms used as label
// and description fallbacks. Both the legacy elements namespace and DCMI
// terms are covered since ontologies in the wild mix them freely.
package dc
