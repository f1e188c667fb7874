package tests

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateCourse(t *testing.T) {
	_, teacherToken := newUser(t, "teacher")

	resp := doRequest(t, "POST", "/api/courses", teacherToken, map[string]string{
		"name":        "Algebra",
		"description": "Linear algebra basics",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	result := decodeMap(t, resp)
	assert.Equal(t, "Course created successfully!", result["message"])
	assert.NotEmpty(t, result["courseId"])
}

func TestCreateCourseRequiresTeacherRole(t *testing.T) {
	_, studentToken := newUser(t, "student")

	resp := doRequest(t, "POST", "/api/courses", studentToken, map[string]string{
		"name": "Forbidden Course",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Require Teacher Role!", decodeMap(t, resp)["message"])
}

func TestCreateCourseRequiresName(t *testing.T) {
	_, teacherToken := newUser(t, "teacher")

	resp := doRequest(t, "POST", "/api/courses", teacherToken, map[string]string{
		"description": "no name",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetCoursesVisibility(t *testing.T) {
	teacherName, teacherToken := newUser(t, "teacher")
	_, otherTeacherToken := newUser(t, "teacher")
	_, studentToken := newUser(t, "student")

	ownID := newCourse(t, teacherToken, "Visibility Own")
	otherID := newCourse(t, otherTeacherToken, "Visibility Other")

	// Teacher sees only self-owned courses
	resp := doRequest(t, "GET", "/api/courses", teacherToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	ids := map[float64]string{}
	for _, course := range decodeList(t, resp) {
		ids[course["id"].(float64)] = course["teacher_name"].(string)
	}
	assert.Contains(t, ids, ownID)
	assert.NotContains(t, ids, otherID)
	assert.Equal(t, teacherName, ids[ownID])

	// Student sees all courses with teacher names attached
	resp = doRequest(t, "GET", "/api/courses", studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	ids = map[float64]string{}
	for _, course := range decodeList(t, resp) {
		ids[course["id"].(float64)] = course["teacher_name"].(string)
	}
	assert.Contains(t, ids, ownID)
	assert.Contains(t, ids, otherID)
}

func TestGetCourse(t *testing.T) {
	teacherName, teacherToken := newUser(t, "teacher")
	_, studentToken := newUser(t, "student")

	courseID := newCourse(t, teacherToken, "Single Course")

	// Any authenticated user may fetch any course by id
	resp := doRequest(t, "GET", fmt.Sprintf("/api/courses/%.0f", courseID), studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	assert.Equal(t, "Single Course", result["name"])
	assert.Equal(t, teacherName, result["teacher_name"])
}

func TestGetCourseNotFound(t *testing.T) {
	_, studentToken := newUser(t, "student")

	resp := doRequest(t, "GET", "/api/courses/999999", studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found!", decodeMap(t, resp)["message"])
}
