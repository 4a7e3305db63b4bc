//
// web service for scoring the early years development
// assessment across several years.
// The service loads the static assessment document (sections,
// subsections, questions and the scoring legend) once at
// startup, keeps a score per question for each tracked year
// in memory, and reports completion and weighted progress at
// question, subsection, section and year level.
//
package otfeyda
