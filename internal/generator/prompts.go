package generator

import (
	"fmt"

	"github.com/codegen-labs/codegen/internal/templates"
)

func componentPrompt(name string, v templates.Variant) string {
	return fmt.Sprintf(`Create a complete React %s component named %s with:
1. TypeScript types and interfaces
2. Props interface with common fields
3. Proper component structure and organization
4. Complete JSDoc documentation
5. CSS module setup with proper typing
6. Error handling if needed
7. Loading state handling if needed
8. Best practices and modern React patterns`, v, name)
}

func hookPrompt(name string, v templates.Variant) string {
	return fmt.Sprintf(`Create a complete React custom hook named use%s with:
1. TypeScript types and interfaces
2. Proper error handling
3. Loading states if needed
4. Complete JSDoc documentation
5. Usage examples
6. Unit test examples
7. Best practices for %s hooks`, name, v)
}

func crudServicePrompt(model string) string {
	return fmt.Sprintf(`Create a complete TypeScript service for %[1]s with the following:
1. Interface for %[1]s with common fields (id, createdAt, updatedAt)
2. CRUD service class with async methods for:
   - getAll(): Promise<%[1]s[]>
   - getById(id: number): Promise<%[1]s>
   - create(data: Create%[1]sDto): Promise<%[1]s>
   - update(id: number, data: Partial<%[1]s>): Promise<%[1]s>
   - delete(id: number): Promise<void>
3. Error handling with try-catch blocks
4. TypeScript types and interfaces
5. Axios for HTTP requests with base URL from environment
6. Complete JSDoc documentation
7. Error types and custom error handling`, model)
}

func crudHookPrompt(model string) string {
	return fmt.Sprintf(`Create a complete React custom hook for managing %s with:
1. State management for data, loading, and error states
2. CRUD operations integration with the service
3. TypeScript types and interfaces
4. Comprehensive error handling
5. Loading states for each operation
6. Complete JSDoc documentation
7. Usage examples in comments
8. React Query integration (optional)`, model)
}
