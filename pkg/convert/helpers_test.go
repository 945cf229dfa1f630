/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package convert

import "github.com/google/uuid"

func mustUUID(s string) uuid.UUID {
	return uuid.MustParse(s)
}
