// Package chromlgs holds the input plumbing shared by the chromosome
// comparison and ortholog presence tools: opening local or gs:// inputs,
// transparent decompression, delimiter handling and zero-guarded fractions.
//
// The domain logic lives in the chromfile, chromcompare and presence
// subpackages; the executables live under cmd/.
package chromlgs
