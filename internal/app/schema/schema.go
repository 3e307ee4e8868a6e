// Package schema declares the foreign-key dependency graph of the academic
// tables. The purge operation derives its deletion order from this graph
// instead of a hardcoded table list, so a schema change that is not mirrored
// here fails loudly at startup rather than silently violating a constraint.
package schema

import (
	"fmt"
	"sort"
)

// Academic table names. The users table is deliberately absent: purging
// resets academic data but keeps login accounts.
const (
	TableColleges           = "colleges"
	TableAcademicYears      = "academic_years"
	TableDepartments        = "departments"
	TableSemesters          = "semesters"
	TableDivisions          = "divisions"
	TableSubjects           = "subjects"
	TableStudents           = "students"
	TableFaculty            = "faculty"
	TableCourses            = "courses"
	TableStudentEnrollments = "student_enrollments"
	TableAssignments        = "assignments"
	TableSubmissions        = "submissions"
	TableAttendanceRecords  = "attendance_records"
	TableExams              = "exams"
	TableExamResults        = "exam_results"
	TableExamSubjectResults = "exam_subject_results"
)

// dependencies maps each table to the tables it holds foreign keys into.
// References to users are omitted on purpose; user rows are never purged.
var dependencies = map[string][]string{
	TableColleges:           {},
	TableAcademicYears:      {TableColleges},
	TableDepartments:        {TableColleges},
	TableSemesters:          {TableDepartments, TableAcademicYears},
	TableDivisions:          {TableSemesters},
	TableSubjects:           {TableDepartments},
	TableStudents:           {TableDepartments, TableSemesters, TableDivisions},
	TableFaculty:            {TableDepartments},
	TableCourses:            {TableSubjects, TableFaculty, TableSemesters, TableDivisions},
	TableStudentEnrollments: {TableStudents, TableCourses},
	TableAssignments:        {TableCourses},
	TableSubmissions:        {TableAssignments, TableStudents},
	TableAttendanceRecords:  {TableStudents, TableCourses},
	TableExams:              {TableSemesters},
	TableExamResults:        {TableExams, TableStudents},
	TableExamSubjectResults: {TableExamResults},
}

// Tables returns the names of all academic tables covered by the purge.
func Tables() []string {
	names := make([]string, 0, len(dependencies))
	for name := range dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeletionOrder returns the academic tables ordered so that every table
// appears before all tables it references. Deleting in this order never
// trips a foreign-key constraint. The result is deterministic: ties are
// broken alphabetically.
func DeletionOrder() ([]string, error) {
	// dependants counts, per table, how many unprocessed tables reference it
	dependants := make(map[string]int, len(dependencies))
	for name := range dependencies {
		dependants[name] = 0
	}
	for name, parents := range dependencies {
		for _, parent := range parents {
			if _, ok := dependencies[parent]; !ok {
				return nil, fmt.Errorf("table %s references undeclared table %s", name, parent)
			}
			dependants[parent]++
		}
	}

	// Kahn's algorithm over the reversed edges: a table is ready once no
	// remaining table holds a foreign key into it.
	var ready []string
	for name, count := range dependants {
		if count == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(dependencies))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		var unlocked []string
		for _, parent := range dependencies[name] {
			dependants[parent]--
			if dependants[parent] == 0 {
				unlocked = append(unlocked, parent)
			}
		}
		sort.Strings(unlocked)
		ready = append(ready, unlocked...)
		sort.Strings(ready)
	}

	if len(order) != len(dependencies) {
		return nil, fmt.Errorf("foreign-key graph contains a cycle; resolved %d of %d tables", len(order), len(dependencies))
	}

	return order, nil
}
